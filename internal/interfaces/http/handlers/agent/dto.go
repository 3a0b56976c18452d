package agent

import "github.com/gin-gonic/gin"

type UpdateTicketRequest struct {
	Status   string   `json:"status" binding:"required"`
	Priority string   `json:"priority" binding:"required"`
	SkillIDs []string `json:"skill_ids"`
	Tags     []string `json:"tags"`
}

type AddMessageRequest struct {
	Content    string `json:"content" binding:"required"`
	Visibility string `json:"visibility" binding:"required"`
}

type AssignQueueRequest struct {
	QueueID *string `json:"queue_id"`
}

type listTicketsRequest struct {
	View     string
	Tag      *string
	Status   *string
	Priority *string
}

func parseListTicketsRequest(c *gin.Context) listTicketsRequest {
	req := listTicketsRequest{View: c.DefaultQuery("view", "all")}
	if v, ok := c.GetQuery("tag"); ok {
		req.Tag = &v
	}
	if v, ok := c.GetQuery("status"); ok {
		req.Status = &v
	}
	if v, ok := c.GetQuery("priority"); ok {
		req.Priority = &v
	}
	return req
}
