package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"esg-index-backend/internal/report"
)

// GetCSRDReport renders the yearly sustainability report as markdown.
func (h *Handler) GetCSRDReport(c *gin.Context) {
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}

	md := report.CSRD(c.Request.Context(), h.store, year, h.report.CompanyName, time.Now())
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(md))
}

// GetAuditExport streams the audit workbook as an xlsx attachment.
func (h *Handler) GetAuditExport(c *gin.Context) {
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}

	workbook, err := report.AuditWorkbook(c.Request.Context(), h.store, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("esg_audit_%d.xlsx", year)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buffer.Bytes())
}
