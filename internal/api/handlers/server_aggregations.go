package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"heatwatch.io/heatwatch/ent"
	"heatwatch.io/heatwatch/internal/aggregation"
	apperrors "heatwatch.io/heatwatch/internal/pkg/errors"
)

// aggregationBucket is the API shape of one heatmap cell.
type aggregationBucket struct {
	Region            string           `json:"region"`
	Date              string           `json:"date"`
	Hour              int              `json:"hour"`
	TotalEvents       int64            `json:"total_events"`
	HighRiskEvents    int64            `json:"high_risk_events"`
	ValidatedEvents   int64            `json:"validated_events"`
	AvgRisk           float64          `json:"avg_risk"`
	MaxRisk           float64          `json:"max_risk"`
	HeatIntensity     float64          `json:"heat_intensity"`
	CategoryBreakdown map[string]int64 `json:"category_breakdown,omitempty"`
}

// GetAggregations handles GET /api/v1/aggregations: the heatmap read,
// hottest buckets first.
func (s *Server) GetAggregations(c *gin.Context) {
	params := aggregation.QueryParams{
		Region: c.Query("region"),
	}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidEvent, "from must be RFC3339"))
			return
		}
		params.From = t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidEvent, "to must be RFC3339"))
			return
		}
		params.To = t
	}
	if limit := c.Query("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidEvent, "limit must be a positive integer"))
			return
		}
		params.Limit = n
	}

	buckets, err := s.reader.Query(c.Request.Context(), params)
	if err != nil {
		_ = c.Error(err)
		return
	}

	items := make([]aggregationBucket, 0, len(buckets))
	for _, b := range buckets {
		items = append(items, bucketToAPI(b))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func bucketToAPI(b *ent.StateAggregation) aggregationBucket {
	return aggregationBucket{
		Region:            b.Region,
		Date:              b.Date,
		Hour:              b.Hour,
		TotalEvents:       b.TotalEvents,
		HighRiskEvents:    b.HighRiskEvents,
		ValidatedEvents:   b.ValidatedEvents,
		AvgRisk:           b.AvgMisinformationRisk,
		MaxRisk:           b.MaxMisinformationRisk,
		HeatIntensity:     b.HeatIntensity,
		CategoryBreakdown: b.CategoryBreakdown,
	}
}
