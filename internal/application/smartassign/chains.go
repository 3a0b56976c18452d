package smartassign

import (
	"context"
	"encoding/json"
	"fmt"

	"helpdesk/internal/infrastructure/llm"
)

// SkillResult is the parsed output of the skill chain. Analysis is kept for
// audit logging only and never influences the recommendation.
type SkillResult struct {
	Analysis string   `json:"analysis"`
	SkillIDs []string `json:"skill_ids"`
}

// QueueResult is the parsed output of the queue chain.
type QueueResult struct {
	Analysis string  `json:"analysis"`
	QueueID  *string `json:"queue_id"`
}

// ClassifySkills runs the skill chain once: render the prompt over the given
// catalog text, call the model, parse the JSON output.
func ClassifySkills(ctx context.Context, client llm.Client, title, content, catalog string) (*SkillResult, error) {
	raw, err := client.Complete(ctx, renderSkillPrompt(title, content, catalog))
	if err != nil {
		return nil, fmt.Errorf("skill chain completion failed: %w", err)
	}

	var result SkillResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("skill chain returned malformed JSON: %w", err)
	}
	if result.SkillIDs == nil {
		result.SkillIDs = []string{}
	}
	return &result, nil
}

// ClassifyQueue runs the queue chain once.
func ClassifyQueue(ctx context.Context, client llm.Client, title, content, catalog string) (*QueueResult, error) {
	raw, err := client.Complete(ctx, renderQueuePrompt(title, content, catalog))
	if err != nil {
		return nil, fmt.Errorf("queue chain completion failed: %w", err)
	}

	var result QueueResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("queue chain returned malformed JSON: %w", err)
	}
	return &result, nil
}
