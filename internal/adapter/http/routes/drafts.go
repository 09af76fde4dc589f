package routes

import (
	"freight_quote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathDrafts = "/drafts"

func addDraftRoutes(rg *gin.RouterGroup, draftHandler *handlers.DraftQuoteHandler) {
	drafts := rg.Group(PathDrafts)
	{
		drafts.POST("/validate", draftHandler.ValidateForm)
		drafts.POST("/submission-check", draftHandler.CheckSubmission)
		drafts.POST("/resume-token", draftHandler.CreateResumeToken)
		drafts.PUT("/:resume_token", draftHandler.SaveDraft)
		drafts.GET("/:resume_token", draftHandler.GetDraft)
		drafts.POST("/:resume_token/submit", draftHandler.SubmitDraft)
	}
}
