// Package notify delivers generated post drafts to a reviewer by email.
package notify

import (
	"context"
	"fmt"

	"github.com/spryker-community/echo/internal/content"
	"github.com/spryker-community/echo/pkg/email"
	"github.com/spryker-community/echo/pkg/logging"
)

type Publisher interface {
	Publish(ctx context.Context, post content.GeneratedPost) error
}

type EmailPublisherConfig struct {
	Sender *email.Sender
	SMTP   email.Config
	To     string
	Logger logging.Logger
}

// EmailPublisher mails a draft for review. When SMTP or the recipient is not
// configured it skips silently, so the service runs fine without email.
type EmailPublisher struct {
	sender *email.Sender
	smtp   email.Config
	to     string
	logger logging.Logger
}

func NewEmailPublisher(cfg EmailPublisherConfig) *EmailPublisher {
	return &EmailPublisher{
		sender: cfg.Sender,
		smtp:   cfg.SMTP,
		to:     cfg.To,
		logger: cfg.Logger,
	}
}

func (p *EmailPublisher) Publish(ctx context.Context, post content.GeneratedPost) error {
	if p.smtp.Host == "" || p.smtp.From == "" {
		p.logger.Warn("Draft publisher: SMTP not configured, skipping email")
		return nil
	}
	if p.to == "" {
		p.logger.Warn("Draft publisher: no recipient configured, skipping email")
		return nil
	}

	subject := draftEmailSubject(post)
	body, err := renderDraftEmail(post)
	if err != nil {
		return fmt.Errorf("render draft email: %w", err)
	}

	if err := p.sender.SendMail(ctx, p.to, subject, body); err != nil {
		return fmt.Errorf("send draft email: %w", err)
	}

	p.logger.WithField("item_id", post.SourceItem.ID).Info("Draft email sent")
	return nil
}

func draftEmailSubject(post content.GeneratedPost) string {
	preview := post.SourceItem.Title
	if len(preview) > 60 {
		preview = preview[:57] + "..."
	}
	return fmt.Sprintf("[Echo] Post Draft: %s", preview)
}
