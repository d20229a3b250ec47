package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/mark3labs/voiceintake/internal/form"
	"github.com/mark3labs/voiceintake/internal/hooks"
	"github.com/mark3labs/voiceintake/internal/logger"
	"github.com/mark3labs/voiceintake/internal/record"
	"github.com/mark3labs/voiceintake/internal/submit"
	"github.com/mark3labs/voiceintake/internal/wizard"
	"github.com/spf13/cobra"
)

var submitFlags struct {
	file string
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Validate and send a prepared record",
	Long: `Validate a record file (.json, .yml or .yaml) against the questionnaire
and send it to the document-generation service.

Saved copies written by --save-copy are accepted as input too.
Exits non-zero when the record is invalid or the submission fails.`,
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().StringVarP(&submitFlags.file, "file", "f", "", "Record file to send (required)")
	_ = submitCmd.MarkFlagRequired("file")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	rec, err := record.Load(submitFlags.file)
	if err != nil {
		return err
	}

	catalog := form.DefaultCatalog()
	reg, err := form.NewRegistry(catalog)
	if err != nil {
		return err
	}
	reg.Load(rec)

	client := submit.NewClient(cfg.Endpoint, submit.WithTimeout(cfg.Timeout()))
	ctrl := wizard.NewController(catalog, reg, client, wizard.WithSendEmail(cfg.SendEmail))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = ctrl.Submit(ctx)
	switch {
	case errors.Is(err, wizard.ErrInvalidRecord):
		printErrors(reg.Errors())
		return err
	case err != nil:
		if submit.KindOf(err) == submit.KindBackendUnavailable {
			fmt.Fprintln(os.Stderr, submit.Hint(cfg.Endpoint))
		}
		return err
	}

	fmt.Printf("Form sent to %s (session %s).\n", cfg.Endpoint, ctrl.Session())

	values := reg.Values()
	if cfg.SaveCopy {
		path, err := record.SaveCopy(cfg.DataDir, record.Copy{
			Session:     ctrl.Session(),
			SubmittedAt: time.Now(),
			Endpoint:    cfg.Endpoint,
			Record:      values,
		})
		if err != nil {
			logger.Warn("Failed to save record copy: %v", err)
			fmt.Fprintf(os.Stderr, "Warning: could not save a local copy: %v\n", err)
		} else {
			fmt.Printf("Copy saved to %s\n", path)
		}
	}

	return runPostSubmitHook(ctx, values, ctrl.Session())
}

func runPostSubmitHook(ctx context.Context, values form.Record, session string) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	hooksCfg, err := hooks.LoadConfig(workDir)
	if err != nil {
		return err
	}
	hook := hooksCfg.PostSubmit()
	if hook == nil {
		return nil
	}

	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode record for hook: %w", err)
	}
	business, _ := values["businessName"].(string)
	contact, _ := values["contactName"].(string)
	out, err := hooks.Execute(ctx, hook, workDir, hooks.Variables{
		Business: business,
		Contact:  contact,
		Session:  session,
	}, data)
	if err != nil {
		return err
	}
	if out != "" {
		fmt.Print(out)
	}
	return nil
}

func printErrors(errs map[string]string) {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintln(os.Stderr, "The record has invalid or missing answers:")
	for _, k := range keys {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", k, errs[k])
	}
}
