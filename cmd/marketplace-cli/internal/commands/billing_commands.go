package commands

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/travel-marketplace/internal/app"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/scheduler"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/config"

	"github.com/spf13/cobra"
)

// runBillingJob executes one scheduler job synchronously, outside the cron loop
func runBillingJob(cmd *cobra.Command, name string, pick func(s *scheduler.Scheduler) func(ctx context.Context) (int, error)) error {
	cc, err := newCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cc.close()

	walletService, err := app.NewWalletService(cc.repos.Wallets, cc.repos.Transactor, cc.cfg.Billing.Currency, cc.log)
	if err != nil {
		return fmt.Errorf("failed to create wallet service: %w", err)
	}
	invoiceService, err := app.NewInvoiceService(cc.repos.Invoices, cc.repos.Payments, walletService, cc.repos.Transactor, &cc.cfg.Billing, cc.log)
	if err != nil {
		return fmt.Errorf("failed to create invoice service: %w", err)
	}

	jobs, err := scheduler.NewScheduler(&config.SchedulerSettings{Enabled: false}, invoiceService, nil, cc.log)
	if err != nil {
		return err
	}

	n, err := pick(jobs)(cmd.Context())
	if err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	cc.log.Info("Job ", name, " processed ", n, " invoices")
	return nil
}

// GenerateRecurringCmd issues the invoices of every due recurring schedule
func GenerateRecurringCmd(cmd *cobra.Command, _ []string) error {
	return runBillingJob(cmd, scheduler.JobRecurringInvoices, func(s *scheduler.Scheduler) func(ctx context.Context) (int, error) {
		return s.GenerateRecurring
	})
}

// MarkOverdueCmd flags unpaid invoices past their due date
func MarkOverdueCmd(cmd *cobra.Command, _ []string) error {
	return runBillingJob(cmd, scheduler.JobOverdueInvoices, func(s *scheduler.Scheduler) func(ctx context.Context) (int, error) {
		return s.MarkOverdue
	})
}

// InitBillingCommands registers the billing job commands
func InitBillingCommands(rootCmd *cobra.Command) {
	billingCmd := &cobra.Command{
		Use:   "billing",
		Short: "Run billing jobs once",
	}

	billingCmd.AddCommand(&cobra.Command{
		Use:   "generate-recurring",
		Short: "Generate the next invoice of every due recurring schedule",
		Args:  cobra.NoArgs,
		RunE:  GenerateRecurringCmd,
	})
	billingCmd.AddCommand(&cobra.Command{
		Use:   "mark-overdue",
		Short: "Mark unpaid invoices past their due date as overdue",
		Args:  cobra.NoArgs,
		RunE:  MarkOverdueCmd,
	})

	rootCmd.AddCommand(billingCmd)
}
