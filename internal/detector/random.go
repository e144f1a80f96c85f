package detector

import (
	"context"
	"math/rand"
)

// candidateNames is the fixed list the substitute detector draws from.
var candidateNames = []string{
	"Ana Oliveira",
	"Bruno Carvalho",
	"Carla Mendes",
	"João Silva",
	"Maria Santos",
	"Pedro Costa",
}

// Random is a stand-in detector for deployments without a recognition
// engine. It ignores its input and returns one name drawn uniformly at
// random from the candidate list.
type Random struct{}

// NewRandom returns the substitute detector.
func NewRandom() *Random {
	return &Random{}
}

// Detect implements Detector. It never fails and never inspects the
// payload.
func (*Random) Detect(_ context.Context, _ []byte) (string, error) {
	return candidateNames[rand.Intn(len(candidateNames))], nil
}
