package smartassign

import (
	"fmt"
	"strings"
)

const skillPromptTemplate = `
Given a support ticket, analyze the requirements and determine which skills are most relevant.
Think step by step about what the ticket requires and how it maps to the available skills.
Only return skill IDs that are highly relevant to the ticket content.
If no skills are clearly relevant, return an empty array.

Ticket Title: %s
Ticket Content: %s

Available Skills:
%s

Return a JSON object with the following schema:
{
    "analysis": string,  // Your step-by-step reasoning about why these skills are relevant
    "skill_ids": string[]  // Array of skill IDs that are relevant to the ticket
}
`

const queuePromptTemplate = `
Given a support ticket, analyze the requirements and determine which queue is most appropriate.
Think step by step about what the ticket requires and how it maps to the available queues.
Only return a queue ID if there is a clear match for the ticket content.
If no queue is clearly relevant, return null.

Ticket Title: %s
Ticket Content: %s

Available Queues:
%s

Return a JSON object with the following schema:
{
    "analysis": string,  // Your step-by-step reasoning about why this queue is appropriate
    "queue_id": string | null  // ID of the most appropriate queue, or null if no clear match
}
`

func renderSkillPrompt(title, content, catalog string) string {
	return fmt.Sprintf(skillPromptTemplate, title, content, catalog)
}

func renderQueuePrompt(title, content, catalog string) string {
	return fmt.Sprintf(queuePromptTemplate, title, content, catalog)
}

// CatalogEntry is one candidate offered to the model.
type CatalogEntry struct {
	ID          string
	Name        string
	Description string
}

// RenderCatalog formats entries the way the prompts expect.
func RenderCatalog(entries []CatalogEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		description := e.Description
		if description == "" {
			description = "No description"
		}
		lines = append(lines, fmt.Sprintf("ID: %s\nName: %s\nDescription: %s\n", e.ID, e.Name, description))
	}
	return strings.Join(lines, "\n")
}
