package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/walletive/backend/internal/application/usecase/setup"
	"github.com/walletive/backend/internal/application/usecase/survey"
	domainerror "github.com/walletive/backend/internal/domain/error"
	q "github.com/walletive/backend/internal/domain/questionnaire"
)

// Commands accepted at any prompt.
const (
	commandBack = ":atras"
	commandQuit = ":salir"
)

// ErrSurveyAborted is returned when the user quits or input ends before the last question.
var ErrSurveyAborted = errors.New("survey aborted before completion")

// Submitter persists a finished survey.
type Submitter interface {
	Execute(ctx context.Context, input survey.SubmitSurveyInput) (*survey.SubmitSurveyOutput, error)
}

// SurveyRunner drives the onboarding flow over a line-oriented terminal.
type SurveyRunner struct {
	in        *bufio.Scanner
	out       io.Writer
	questions []q.Question
	submitter Submitter
}

// NewSurveyRunner creates a runner reading answers from in and writing prompts to out.
func NewSurveyRunner(in io.Reader, out io.Writer, questions []q.Question, submitter Submitter) *SurveyRunner {
	return &SurveyRunner{
		in:        bufio.NewScanner(in),
		out:       out,
		questions: questions,
		submitter: submitter,
	}
}

// Run asks every applicable question, re-prompting on invalid input, and
// submits the answers once the flow completes. Nothing is written if the
// user quits early.
func (r *SurveyRunner) Run(ctx context.Context) (*survey.SubmitSurveyOutput, error) {
	var result *q.Result
	flow := q.NewFlow(r.questions, func(res q.Result) {
		result = &res
	})

	fmt.Fprintf(r.out, "Bienvenido a Walletive. Escribe %s para volver a la pregunta anterior o %s para salir.\n\n", commandBack, commandQuit)

	for {
		current, ok := flow.Current()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		r.prompt(current, flow.Cursor()+1, flow.Len())

		if !r.in.Scan() {
			if err := r.in.Err(); err != nil {
				return nil, fmt.Errorf("failed to read answer: %w", err)
			}
			return nil, ErrSurveyAborted
		}
		line := r.in.Text()

		switch strings.TrimSpace(strings.ToLower(line)) {
		case commandQuit:
			return nil, ErrSurveyAborted
		case commandBack:
			if !flow.Back() {
				fmt.Fprintln(r.out, "  Ya estás en la primera pregunta.")
			}
			continue
		}

		if err := flow.Submit(line); err != nil {
			var surveyErr *domainerror.SurveyError
			if errors.As(err, &surveyErr) && surveyErr.IsValidation() {
				fmt.Fprintf(r.out, "  Respuesta inválida: %s\n", surveyErr.Message)
				continue
			}
			return nil, err
		}
	}

	if result == nil {
		return nil, ErrSurveyAborted
	}

	submission, err := survey.SubmissionFromAnswers(result.Answers)
	if err != nil {
		return nil, err
	}

	output, err := r.submitter.Execute(ctx, survey.SubmitSurveyInput{Submission: submission})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(r.out, "\nConfiguración guardada para %s: %d movimientos registrados.\n", output.DisplayName, output.TransactionCount)
	if output.GoalID != nil {
		fmt.Fprintln(r.out, "Meta de ahorro creada.")
	}
	return output, nil
}

func (r *SurveyRunner) prompt(question q.Question, position, total int) {
	fmt.Fprintf(r.out, "[%d/%d] %s\n", position, total, question.Prompt)
	if choices := question.Choices(); len(choices) > 0 {
		fmt.Fprintf(r.out, "  (%s)\n", strings.Join(choices, " / "))
	} else if question.Placeholder != "" {
		fmt.Fprintf(r.out, "  %s\n", question.Placeholder)
	}
	fmt.Fprint(r.out, "> ")
}

func newSurveyCommand(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "survey",
		Short: "Answer the onboarding survey in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			a, err := openApp(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			status, err := a.status.Execute(cmd.Context(), setup.GetStatusInput{})
			if err != nil {
				return err
			}
			if status.Completed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s ya completó la configuración. Usa 'walletive summary' para ver su resumen.\n", status.DisplayName)
				return nil
			}

			runner := NewSurveyRunner(cmd.InOrStdin(), cmd.OutOrStdout(), q.Onboarding(), a.submit)
			if _, err := runner.Run(cmd.Context()); err != nil {
				if errors.Is(err, ErrSurveyAborted) {
					fmt.Fprintln(cmd.OutOrStdout(), "\nEncuesta cancelada. No se guardó ningún dato.")
					return nil
				}
				return err
			}

			return printSummary(cmd.Context(), cmd.OutOrStdout(), a.summary)
		},
	}
}
