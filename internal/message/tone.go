package message

// Tone is the register applied to outgoing message composition and
// translation.
type Tone string

const (
	ToneCasual   Tone = "casual"
	ToneStandard Tone = "standard"
	ToneFormal   Tone = "formal"
)

// Valid reports whether t is a known tone.
func (t Tone) Valid() bool {
	switch t {
	case ToneCasual, ToneStandard, ToneFormal:
		return true
	}
	return false
}

// ToneOption is static reference data for the tone selector.
type ToneOption struct {
	Tone        Tone
	Label       string
	Description string
	Icon        string
}

// ToneOptions lists the selectable tones in display order.
var ToneOptions = []ToneOption{
	{Tone: ToneCasual, Label: "Casual", Description: "Relaxed, like talking to a friend", Icon: "smile"},
	{Tone: ToneStandard, Label: "Standard", Description: "Neutral, fits most conversations", Icon: "user"},
	{Tone: ToneFormal, Label: "Formal", Description: "Polite, for professional exchanges", Icon: "briefcase"},
}
