package ports

import "github.com/stpnv0/SafeMeet/internal/challenge"

type ChallengeGenerator interface {
	Generate() challenge.Challenge
}

type CodeGenerator interface {
	Generate() (string, error)
}
