package smartassign

import (
	"context"

	"helpdesk/internal/domain/queue"
	"helpdesk/internal/domain/skill"
	"helpdesk/internal/infrastructure/llm"
	"helpdesk/internal/shared/logger"
)

// Service runs the skill and queue chains concurrently against the
// smart-assign-enabled catalog rows and fans the results back in. Each
// chain degrades independently: a failure on one side still lets the other
// side's recommendation through.
type Service struct {
	skillRepo skill.Repository
	queueRepo queue.Repository
	client    llm.Client
	logger    logger.Interface
}

func NewService(
	skillRepo skill.Repository,
	queueRepo queue.Repository,
	client llm.Client,
	logger logger.Interface,
) *Service {
	return &Service{
		skillRepo: skillRepo,
		queueRepo: queueRepo,
		client:    client,
		logger:    logger,
	}
}

func (s *Service) SmartAssign(ctx context.Context, title, content string) Recommendation {
	type skillOutcome struct {
		ids []string
	}
	type queueOutcome struct {
		id *string
	}

	skillCh := make(chan skillOutcome, 1)
	queueCh := make(chan queueOutcome, 1)

	go func() {
		skillCh <- skillOutcome{ids: s.runSkillChain(ctx, title, content)}
	}()
	go func() {
		queueCh <- queueOutcome{id: s.runQueueChain(ctx, title, content)}
	}()

	skills := <-skillCh
	queues := <-queueCh

	return Recommendation{
		SkillIDs: skills.ids,
		QueueID:  queues.id,
	}
}

func (s *Service) runSkillChain(ctx context.Context, title, content string) []string {
	enabled, err := s.skillRepo.ListSmartAssignEnabled(ctx)
	if err != nil {
		s.logger.Warnw("smart assign skill catalog load failed", "error", err)
		return []string{}
	}
	if len(enabled) == 0 {
		return []string{}
	}

	entries := make([]CatalogEntry, 0, len(enabled))
	known := make(map[string]struct{}, len(enabled))
	for _, sk := range enabled {
		entries = append(entries, CatalogEntry{ID: sk.ID(), Name: sk.Name(), Description: sk.Description()})
		known[sk.ID()] = struct{}{}
	}

	result, err := ClassifySkills(ctx, s.client, title, content, RenderCatalog(entries))
	if err != nil {
		s.logger.Warnw("smart assign skill chain failed", "error", err)
		return []string{}
	}
	s.logger.Infow("smart assign skill analysis", "analysis", result.Analysis, "skill_ids", result.SkillIDs)

	// The model can hallucinate ids; only ids from the enabled catalog pass.
	valid := make([]string, 0, len(result.SkillIDs))
	for _, id := range result.SkillIDs {
		if _, ok := known[id]; ok {
			valid = append(valid, id)
		} else {
			s.logger.Warnw("smart assign returned unknown skill id", "skill_id", id)
		}
	}
	return valid
}

func (s *Service) runQueueChain(ctx context.Context, title, content string) *string {
	enabled, err := s.queueRepo.ListSmartAssignEnabled(ctx)
	if err != nil {
		s.logger.Warnw("smart assign queue catalog load failed", "error", err)
		return nil
	}
	if len(enabled) == 0 {
		return nil
	}

	entries := make([]CatalogEntry, 0, len(enabled))
	known := make(map[string]struct{}, len(enabled))
	for _, q := range enabled {
		entries = append(entries, CatalogEntry{ID: q.ID(), Name: q.Name(), Description: q.Description()})
		known[q.ID()] = struct{}{}
	}

	result, err := ClassifyQueue(ctx, s.client, title, content, RenderCatalog(entries))
	if err != nil {
		s.logger.Warnw("smart assign queue chain failed", "error", err)
		return nil
	}
	s.logger.Infow("smart assign queue analysis", "analysis", result.Analysis, "queue_id", result.QueueID)

	if result.QueueID == nil {
		return nil
	}
	if _, ok := known[*result.QueueID]; !ok {
		s.logger.Warnw("smart assign returned unknown queue id", "queue_id", *result.QueueID)
		return nil
	}
	return result.QueueID
}
