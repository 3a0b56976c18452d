// Package smartassign hosts the offline evaluation harness for the
// smart-assign chains. Cases carry their own catalog text so graded runs
// are reproducible independent of the live database.
package smartassign

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"helpdesk/internal/application/smartassign"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/llm"
	"helpdesk/internal/shared/logger"
)

var (
	env         string
	datasetPath string
	outPath     string
)

type evalCase struct {
	Title            string   `yaml:"title"`
	Content          string   `yaml:"content"`
	Skills           string   `yaml:"skills"`
	Queues           string   `yaml:"queues"`
	ExpectedSkillIDs []string `yaml:"expected_skill_ids"`
	ExpectedQueueID  *string  `yaml:"expected_queue_id"`
}

type dataset struct {
	Cases []evalCase `yaml:"cases"`
}

type skillRun struct {
	RunID    string   `yaml:"run_id"`
	Title    string   `yaml:"title"`
	Analysis string   `yaml:"analysis"`
	Expected []string `yaml:"expected"`
	Got      []string `yaml:"got"`
	Match    bool     `yaml:"match"`
	Error    string   `yaml:"error,omitempty"`
}

type queueRun struct {
	RunID    string  `yaml:"run_id"`
	Title    string  `yaml:"title"`
	Analysis string  `yaml:"analysis"`
	Expected *string `yaml:"expected"`
	Got      *string `yaml:"got"`
	Match    bool    `yaml:"match"`
	Error    string  `yaml:"error,omitempty"`
}

type report struct {
	SkillRuns    []skillRun `yaml:"skill_runs"`
	QueueRuns    []queueRun `yaml:"queue_runs"`
	SkillMatches int        `yaml:"skill_matches"`
	QueueMatches int        `yaml:"queue_matches"`
	TotalCases   int        `yaml:"total_cases"`
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "smartassign",
		Short: "Smart-assign tooling",
	}

	evalCmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate the smart-assign chains against a dataset",
		Long:  `Run the skill and queue classification chains over a YAML dataset and write a got-vs-expected report for grading.`,
		RunE:  runEval,
	}
	evalCmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	evalCmd.Flags().StringVar(&datasetPath, "dataset", "", "Path to the YAML dataset (required)")
	evalCmd.Flags().StringVar(&outPath, "out", "report.yaml", "Path to write the YAML report")
	evalCmd.MarkFlagRequired("dataset")

	cmd.AddCommand(evalCmd)
	return cmd
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	raw, err := os.ReadFile(datasetPath)
	if err != nil {
		return fmt.Errorf("failed to read dataset: %w", err)
	}
	var ds dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return fmt.Errorf("failed to parse dataset: %w", err)
	}
	if len(ds.Cases) == 0 {
		return fmt.Errorf("dataset has no cases")
	}

	client := llm.NewOpenAIClient(llm.Config{
		BaseURL:        cfg.SmartAssign.BaseURL,
		APIKey:         cfg.SmartAssign.APIKey,
		Model:          cfg.SmartAssign.Model,
		TimeoutSeconds: cfg.SmartAssign.TimeoutSeconds,
	})

	ctx := context.Background()
	rep := report{TotalCases: len(ds.Cases)}

	for _, c := range ds.Cases {
		sr := skillRun{RunID: uuid.NewString(), Title: c.Title, Expected: c.ExpectedSkillIDs}
		result, err := smartassign.ClassifySkills(ctx, client, c.Title, c.Content, c.Skills)
		if err != nil {
			sr.Error = err.Error()
		} else {
			sr.Analysis = result.Analysis
			sr.Got = result.SkillIDs
			sr.Match = sameIDSet(c.ExpectedSkillIDs, result.SkillIDs)
		}
		if sr.Match {
			rep.SkillMatches++
		}
		rep.SkillRuns = append(rep.SkillRuns, sr)

		qr := queueRun{RunID: uuid.NewString(), Title: c.Title, Expected: c.ExpectedQueueID}
		qresult, err := smartassign.ClassifyQueue(ctx, client, c.Title, c.Content, c.Queues)
		if err != nil {
			qr.Error = err.Error()
		} else {
			qr.Analysis = qresult.Analysis
			qr.Got = qresult.QueueID
			qr.Match = sameQueueID(c.ExpectedQueueID, qresult.QueueID)
		}
		if qr.Match {
			rep.QueueMatches++
		}
		rep.QueueRuns = append(rep.QueueRuns, qr)
	}

	out, err := yaml.Marshal(&rep)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Printf("Evaluated %d cases\n", rep.TotalCases)
	fmt.Printf("  skill exact matches: %d/%d\n", rep.SkillMatches, rep.TotalCases)
	fmt.Printf("  queue exact matches: %d/%d\n", rep.QueueMatches, rep.TotalCases)
	fmt.Printf("Report written to %s\n", outPath)
	return nil
}

func sameIDSet(expected, got []string) bool {
	if len(expected) != len(got) {
		return false
	}
	e := append([]string(nil), expected...)
	g := append([]string(nil), got...)
	sort.Strings(e)
	sort.Strings(g)
	for i := range e {
		if e[i] != g[i] {
			return false
		}
	}
	return true
}

func sameQueueID(expected, got *string) bool {
	if expected == nil || got == nil {
		return expected == got
	}
	return *expected == *got
}
