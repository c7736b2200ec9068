package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
)

// SchedulerSettings configures the background billing jobs
type SchedulerSettings struct {
	Enabled           bool   `mapstructure:"enabled"`
	RecurringInvoices string `mapstructure:"recurring_invoices"`
	OverdueInvoices   string `mapstructure:"overdue_invoices"`
}

// Validate checks that the cron expressions parse when the scheduler is enabled
func (s *SchedulerSettings) Validate() error {
	if !s.Enabled {
		return nil
	}

	validate := validator.New()
	if err := validate.Var(s.RecurringInvoices, "required"); err != nil {
		return fmt.Errorf("recurring invoices schedule is required: %w", err)
	}
	if err := validate.Var(s.OverdueInvoices, "required"); err != nil {
		return fmt.Errorf("overdue invoices schedule is required: %w", err)
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	for _, spec := range []string{s.RecurringInvoices, s.OverdueInvoices} {
		if _, err := parser.Parse(spec); err != nil {
			return fmt.Errorf("invalid cron expression %q: %w", spec, err)
		}
	}

	return nil
}
