package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"heatwatch.io/heatwatch/ent"
	entclaim "heatwatch.io/heatwatch/ent/claim"
	apperrors "heatwatch.io/heatwatch/internal/pkg/errors"
	"heatwatch.io/heatwatch/internal/pkg/logger"
)

const maxClaimPageSize = 100

// claimResponse is the API shape of one claim.
type claimResponse struct {
	ID                    string     `json:"id"`
	Fingerprint           string     `json:"fingerprint"`
	FirstSeenAt           time.Time  `json:"first_seen_at"`
	LastSeenAt            time.Time  `json:"last_seen_at"`
	OccurrenceCount       int64      `json:"occurrence_count"`
	DistinctLocations     []string   `json:"distinct_locations"`
	SpreadVelocity        float64    `json:"spread_velocity"`
	GeographicSpreadScore float64    `json:"geographic_spread_score"`
	OverallRiskScore      float64    `json:"overall_risk_score"`
	ArchivedAt            *time.Time `json:"archived_at,omitempty"`
}

// ListClaims handles GET /api/v1/claims: most recently seen first.
func (s *Server) ListClaims(c *gin.Context) {
	query := s.client.Claim.Query()

	if c.Query("active") == "true" {
		query = query.Where(entclaim.ArchivedAtIsNil())
	}

	limit := maxClaimPageSize
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxClaimPageSize {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidEvent, "limit must be in [1,100]"))
			return
		}
		limit = n
	}

	claims, err := query.
		Order(ent.Desc(entclaim.FieldLastSeenAt)).
		Limit(limit).
		All(c.Request.Context())
	if err != nil {
		logger.Error("failed to list claims", zap.Error(err))
		_ = c.Error(apperrors.Internal(apperrors.CodeInternal, "failed to list claims"))
		return
	}

	// Region containment over the JSON locations list is filtered in
	// memory; the list per claim is small by construction.
	region := c.Query("region")

	items := make([]claimResponse, 0, len(claims))
	for _, cl := range claims {
		if region != "" && !containsLocation(cl.DistinctLocations, region) {
			continue
		}
		items = append(items, claimToAPI(cl))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func containsLocation(locations []string, region string) bool {
	for _, loc := range locations {
		if loc == region {
			return true
		}
	}
	return false
}

// GetClaim handles GET /api/v1/claims/:id: lookup by claim ID or
// fingerprint.
func (s *Server) GetClaim(c *gin.Context) {
	id := c.Param("id")

	cl, err := s.client.Claim.Query().
		Where(entclaim.Or(entclaim.IDEQ(id), entclaim.FingerprintEQ(id))).
		Only(c.Request.Context())
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound(apperrors.CodeNotFound, "claim not found"))
			return
		}
		logger.Error("failed to load claim", zap.String("id", id), zap.Error(err))
		_ = c.Error(apperrors.Internal(apperrors.CodeInternal, "failed to load claim"))
		return
	}

	c.JSON(http.StatusOK, claimToAPI(cl))
}

func claimToAPI(cl *ent.Claim) claimResponse {
	return claimResponse{
		ID:                    cl.ID,
		Fingerprint:           cl.Fingerprint,
		FirstSeenAt:           cl.FirstSeenAt,
		LastSeenAt:            cl.LastSeenAt,
		OccurrenceCount:       cl.OccurrenceCount,
		DistinctLocations:     cl.DistinctLocations,
		SpreadVelocity:        cl.SpreadVelocity,
		GeographicSpreadScore: cl.GeographicSpreadScore,
		OverallRiskScore:      cl.OverallRiskScore,
		ArchivedAt:            cl.ArchivedAt,
	}
}
