// Package challenge draws the hand gesture a buyer must show in the
// verification photo.
package challenge

import (
	"crypto/rand"
	"math/big"
)

type Challenge struct {
	Gesture         string `json:"gesture"`
	DisplayIcon     string `json:"display_icon"`
	InstructionText string `json:"instruction_text"`
}

var catalog = []Challenge{
	{Gesture: "thumbs_up", DisplayIcon: "👍", InstructionText: "Hold your thumb up next to your face"},
	{Gesture: "peace_sign", DisplayIcon: "✌️", InstructionText: "Show a peace sign with two fingers"},
	{Gesture: "ok_sign", DisplayIcon: "👌", InstructionText: "Make an OK sign with your thumb and index finger"},
	{Gesture: "open_palm", DisplayIcon: "✋", InstructionText: "Show your open palm facing the camera"},
	{Gesture: "three_fingers", DisplayIcon: "🤟", InstructionText: "Hold up three fingers"},
	{Gesture: "fist", DisplayIcon: "✊", InstructionText: "Show a closed fist next to your face"},
	{Gesture: "point_up", DisplayIcon: "☝️", InstructionText: "Point your index finger up"},
	{Gesture: "call_me", DisplayIcon: "🤙", InstructionText: "Make a call-me sign with thumb and little finger"},
}

// Catalog returns a copy of every gesture that can be drawn.
func Catalog() []Challenge {
	out := make([]Challenge, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a catalog entry by gesture id.
func Lookup(gesture string) (Challenge, bool) {
	for _, c := range catalog {
		if c.Gesture == gesture {
			return c, true
		}
	}
	return Challenge{}, false
}

type Generator struct {
	intn func(n int) int
}

func NewGenerator() *Generator {
	return &Generator{intn: cryptoIntn}
}

// Generate draws one gesture uniformly from the catalog.
func (g *Generator) Generate() Challenge {
	return catalog[g.intn(len(catalog))]
}

func cryptoIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}
