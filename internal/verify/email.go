package verify

import (
	"go.uber.org/zap"

	"medlink/internal/common"
)

// logEmailService writes outbound mail to the log instead of sending it.
// Used when no mail provider is configured.
type logEmailService struct {
	logger *zap.Logger
	from   string
}

func NewLogEmailService(logger *zap.Logger, from string) common.EmailService {
	return &logEmailService{logger: logger, from: from}
}

func (s *logEmailService) SendEmail(to, subject, body string) error {
	s.logger.Info("outbound email",
		zap.String("from", s.from),
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body))
	return nil
}
