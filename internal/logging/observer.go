package logging

import (
	"openwhen/internal/envelope"

	"github.com/sirupsen/logrus"
)

// PhaseLogger implements envelope.Observer by writing debug entries.
type PhaseLogger struct {
	Log logrus.FieldLogger
}

// Ensure PhaseLogger implements envelope.Observer.
var _ envelope.Observer = (*PhaseLogger)(nil)

func (p *PhaseLogger) OnSequenceStart(card string, seq uint64, dir envelope.Direction) {
	p.Log.WithFields(logrus.Fields{"card": card, "seq": seq, "dir": dir.String()}).Debug("sequence start")
}

func (p *PhaseLogger) OnPhase(card string, seq uint64, phase envelope.Phase) {
	p.Log.WithFields(logrus.Fields{"card": card, "seq": seq, "phase": phase.String()}).Debug("phase")
}

func (p *PhaseLogger) OnSequenceEnd(card string, seq uint64, final envelope.Phase) {
	p.Log.WithFields(logrus.Fields{"card": card, "seq": seq, "phase": final.String()}).Debug("sequence end")
}
