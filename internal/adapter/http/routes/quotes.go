package routes

import (
	"freight_quote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes  = "/quotes"
	PathExports = "/exports"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/preview", quoteHandler.Preview)
		quotes.POST("/validate", quoteHandler.Validate)
		quotes.POST("/validate/source", quoteHandler.ValidateAgainstSource)
		quotes.POST("/export", quoteHandler.ExportJSON)
		quotes.POST("/export/batch", quoteHandler.ExportBatch)
		quotes.POST("/email", quoteHandler.PrepareEmail)
		quotes.POST("/email/send", quoteHandler.SendEmail)
		quotes.POST("/report", quoteHandler.Report)
		quotes.GET("/:reference/exports", quoteHandler.ListArtifacts)
	}

	// Artifact ids live outside /quotes so they do not clash with :reference.
	rg.GET(PathExports+"/:id", quoteHandler.DownloadArtifact)
}
