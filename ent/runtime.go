// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"heatwatch.io/heatwatch/ent/auditlog"
	"heatwatch.io/heatwatch/ent/claim"
	"heatwatch.io/heatwatch/ent/datasource"
	"heatwatch.io/heatwatch/ent/deadletter"
	"heatwatch.io/heatwatch/ent/event"
	"heatwatch.io/heatwatch/ent/schema"
	"heatwatch.io/heatwatch/ent/stateaggregation"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields0[0].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[1].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescResourceType is the schema descriptor for resource_type field.
	auditlogDescResourceType := auditlogFields[2].Descriptor()
	// auditlog.ResourceTypeValidator is a validator for the "resource_type" field. It is called by the builders before save.
	auditlog.ResourceTypeValidator = auditlogDescResourceType.Validators[0].(func(string) error)
	// auditlogDescResourceID is the schema descriptor for resource_id field.
	auditlogDescResourceID := auditlogFields[3].Descriptor()
	// auditlog.ResourceIDValidator is a validator for the "resource_id" field. It is called by the builders before save.
	auditlog.ResourceIDValidator = auditlogDescResourceID.Validators[0].(func(string) error)
	// auditlogDescActor is the schema descriptor for actor field.
	auditlogDescActor := auditlogFields[4].Descriptor()
	// auditlog.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	auditlog.ActorValidator = auditlogDescActor.Validators[0].(func(string) error)
	claimMixin := schema.Claim{}.Mixin()
	claimMixinFields0 := claimMixin[0].Fields()
	_ = claimMixinFields0
	claimFields := schema.Claim{}.Fields()
	_ = claimFields
	// claimDescCreatedAt is the schema descriptor for created_at field.
	claimDescCreatedAt := claimMixinFields0[0].Descriptor()
	// claim.DefaultCreatedAt holds the default value on creation for the created_at field.
	claim.DefaultCreatedAt = claimDescCreatedAt.Default.(func() time.Time)
	// claimDescUpdatedAt is the schema descriptor for updated_at field.
	claimDescUpdatedAt := claimMixinFields0[1].Descriptor()
	// claim.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	claim.DefaultUpdatedAt = claimDescUpdatedAt.Default.(func() time.Time)
	// claim.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	claim.UpdateDefaultUpdatedAt = claimDescUpdatedAt.UpdateDefault.(func() time.Time)
	// claimDescFingerprint is the schema descriptor for fingerprint field.
	claimDescFingerprint := claimFields[1].Descriptor()
	// claim.FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	claim.FingerprintValidator = claimDescFingerprint.Validators[0].(func(string) error)
	// claimDescFirstSeenEventID is the schema descriptor for first_seen_event_id field.
	claimDescFirstSeenEventID := claimFields[3].Descriptor()
	// claim.FirstSeenEventIDValidator is a validator for the "first_seen_event_id" field. It is called by the builders before save.
	claim.FirstSeenEventIDValidator = claimDescFirstSeenEventID.Validators[0].(func(string) error)
	// claimDescOccurrenceCount is the schema descriptor for occurrence_count field.
	claimDescOccurrenceCount := claimFields[5].Descriptor()
	// claim.DefaultOccurrenceCount holds the default value on creation for the occurrence_count field.
	claim.DefaultOccurrenceCount = claimDescOccurrenceCount.Default.(int64)
	// claimDescSpreadVelocity is the schema descriptor for spread_velocity field.
	claimDescSpreadVelocity := claimFields[7].Descriptor()
	// claim.DefaultSpreadVelocity holds the default value on creation for the spread_velocity field.
	claim.DefaultSpreadVelocity = claimDescSpreadVelocity.Default.(float64)
	// claimDescGeographicSpreadScore is the schema descriptor for geographic_spread_score field.
	claimDescGeographicSpreadScore := claimFields[8].Descriptor()
	// claim.DefaultGeographicSpreadScore holds the default value on creation for the geographic_spread_score field.
	claim.DefaultGeographicSpreadScore = claimDescGeographicSpreadScore.Default.(float64)
	// claimDescOverallRiskScore is the schema descriptor for overall_risk_score field.
	claimDescOverallRiskScore := claimFields[9].Descriptor()
	// claim.DefaultOverallRiskScore holds the default value on creation for the overall_risk_score field.
	claim.DefaultOverallRiskScore = claimDescOverallRiskScore.Default.(float64)
	datasourceMixin := schema.DataSource{}.Mixin()
	datasourceMixinFields0 := datasourceMixin[0].Fields()
	_ = datasourceMixinFields0
	datasourceFields := schema.DataSource{}.Fields()
	_ = datasourceFields
	// datasourceDescCreatedAt is the schema descriptor for created_at field.
	datasourceDescCreatedAt := datasourceMixinFields0[0].Descriptor()
	// datasource.DefaultCreatedAt holds the default value on creation for the created_at field.
	datasource.DefaultCreatedAt = datasourceDescCreatedAt.Default.(func() time.Time)
	// datasourceDescUpdatedAt is the schema descriptor for updated_at field.
	datasourceDescUpdatedAt := datasourceMixinFields0[1].Descriptor()
	// datasource.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	datasource.DefaultUpdatedAt = datasourceDescUpdatedAt.Default.(func() time.Time)
	// datasource.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	datasource.UpdateDefaultUpdatedAt = datasourceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// datasourceDescName is the schema descriptor for name field.
	datasourceDescName := datasourceFields[1].Descriptor()
	// datasource.NameValidator is a validator for the "name" field. It is called by the builders before save.
	datasource.NameValidator = datasourceDescName.Validators[0].(func(string) error)
	// datasourceDescFetchCount is the schema descriptor for fetch_count field.
	datasourceDescFetchCount := datasourceFields[5].Descriptor()
	// datasource.DefaultFetchCount holds the default value on creation for the fetch_count field.
	datasource.DefaultFetchCount = datasourceDescFetchCount.Default.(int64)
	// datasourceDescErrorCount is the schema descriptor for error_count field.
	datasourceDescErrorCount := datasourceFields[6].Descriptor()
	// datasource.DefaultErrorCount holds the default value on creation for the error_count field.
	datasource.DefaultErrorCount = datasourceDescErrorCount.Default.(int64)
	// datasourceDescConsecutiveErrors is the schema descriptor for consecutive_errors field.
	datasourceDescConsecutiveErrors := datasourceFields[7].Descriptor()
	// datasource.DefaultConsecutiveErrors holds the default value on creation for the consecutive_errors field.
	datasource.DefaultConsecutiveErrors = datasourceDescConsecutiveErrors.Default.(int)
	deadletterMixin := schema.DeadLetter{}.Mixin()
	deadletterMixinFields0 := deadletterMixin[0].Fields()
	_ = deadletterMixinFields0
	deadletterFields := schema.DeadLetter{}.Fields()
	_ = deadletterFields
	// deadletterDescCreatedAt is the schema descriptor for created_at field.
	deadletterDescCreatedAt := deadletterMixinFields0[0].Descriptor()
	// deadletter.DefaultCreatedAt holds the default value on creation for the created_at field.
	deadletter.DefaultCreatedAt = deadletterDescCreatedAt.Default.(func() time.Time)
	// deadletterDescEventID is the schema descriptor for event_id field.
	deadletterDescEventID := deadletterFields[1].Descriptor()
	// deadletter.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	deadletter.EventIDValidator = deadletterDescEventID.Validators[0].(func(string) error)
	// deadletterDescReason is the schema descriptor for reason field.
	deadletterDescReason := deadletterFields[3].Descriptor()
	// deadletter.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	deadletter.ReasonValidator = deadletterDescReason.Validators[0].(func(string) error)
	eventMixin := schema.Event{}.Mixin()
	eventMixinFields0 := eventMixin[0].Fields()
	_ = eventMixinFields0
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventMixinFields0[0].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	// eventDescUpdatedAt is the schema descriptor for updated_at field.
	eventDescUpdatedAt := eventMixinFields0[1].Descriptor()
	// event.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	event.DefaultUpdatedAt = eventDescUpdatedAt.Default.(func() time.Time)
	// event.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	event.UpdateDefaultUpdatedAt = eventDescUpdatedAt.UpdateDefault.(func() time.Time)
	// eventDescSourceID is the schema descriptor for source_id field.
	eventDescSourceID := eventFields[1].Descriptor()
	// event.SourceIDValidator is a validator for the "source_id" field. It is called by the builders before save.
	event.SourceIDValidator = eventDescSourceID.Validators[0].(func(string) error)
	// eventDescRawHash is the schema descriptor for raw_hash field.
	eventDescRawHash := eventFields[5].Descriptor()
	// event.RawHashValidator is a validator for the "raw_hash" field. It is called by the builders before save.
	event.RawHashValidator = eventDescRawHash.Validators[0].(func(string) error)
	// eventDescFusedRisk is the schema descriptor for fused_risk field.
	eventDescFusedRisk := eventFields[12].Descriptor()
	// event.DefaultFusedRisk holds the default value on creation for the fused_risk field.
	event.DefaultFusedRisk = eventDescFusedRisk.Default.(float64)
	stateaggregationMixin := schema.StateAggregation{}.Mixin()
	stateaggregationMixinFields0 := stateaggregationMixin[0].Fields()
	_ = stateaggregationMixinFields0
	stateaggregationFields := schema.StateAggregation{}.Fields()
	_ = stateaggregationFields
	// stateaggregationDescCreatedAt is the schema descriptor for created_at field.
	stateaggregationDescCreatedAt := stateaggregationMixinFields0[0].Descriptor()
	// stateaggregation.DefaultCreatedAt holds the default value on creation for the created_at field.
	stateaggregation.DefaultCreatedAt = stateaggregationDescCreatedAt.Default.(func() time.Time)
	// stateaggregationDescUpdatedAt is the schema descriptor for updated_at field.
	stateaggregationDescUpdatedAt := stateaggregationMixinFields0[1].Descriptor()
	// stateaggregation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	stateaggregation.DefaultUpdatedAt = stateaggregationDescUpdatedAt.Default.(func() time.Time)
	// stateaggregation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	stateaggregation.UpdateDefaultUpdatedAt = stateaggregationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// stateaggregationDescRegion is the schema descriptor for region field.
	stateaggregationDescRegion := stateaggregationFields[1].Descriptor()
	// stateaggregation.RegionValidator is a validator for the "region" field. It is called by the builders before save.
	stateaggregation.RegionValidator = stateaggregationDescRegion.Validators[0].(func(string) error)
	// stateaggregationDescDate is the schema descriptor for date field.
	stateaggregationDescDate := stateaggregationFields[2].Descriptor()
	// stateaggregation.DateValidator is a validator for the "date" field. It is called by the builders before save.
	stateaggregation.DateValidator = stateaggregationDescDate.Validators[0].(func(string) error)
	// stateaggregationDescHour is the schema descriptor for hour field.
	stateaggregationDescHour := stateaggregationFields[3].Descriptor()
	// stateaggregation.HourValidator is a validator for the "hour" field. It is called by the builders before save.
	stateaggregation.HourValidator = func() func(int) error {
		validators := stateaggregationDescHour.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(hour int) error {
			for _, fn := range fns {
				if err := fn(hour); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// stateaggregationDescTotalEvents is the schema descriptor for total_events field.
	stateaggregationDescTotalEvents := stateaggregationFields[4].Descriptor()
	// stateaggregation.DefaultTotalEvents holds the default value on creation for the total_events field.
	stateaggregation.DefaultTotalEvents = stateaggregationDescTotalEvents.Default.(int64)
	// stateaggregationDescHighRiskEvents is the schema descriptor for high_risk_events field.
	stateaggregationDescHighRiskEvents := stateaggregationFields[5].Descriptor()
	// stateaggregation.DefaultHighRiskEvents holds the default value on creation for the high_risk_events field.
	stateaggregation.DefaultHighRiskEvents = stateaggregationDescHighRiskEvents.Default.(int64)
	// stateaggregationDescValidatedEvents is the schema descriptor for validated_events field.
	stateaggregationDescValidatedEvents := stateaggregationFields[6].Descriptor()
	// stateaggregation.DefaultValidatedEvents holds the default value on creation for the validated_events field.
	stateaggregation.DefaultValidatedEvents = stateaggregationDescValidatedEvents.Default.(int64)
	// stateaggregationDescAvgMisinformationRisk is the schema descriptor for avg_misinformation_risk field.
	stateaggregationDescAvgMisinformationRisk := stateaggregationFields[7].Descriptor()
	// stateaggregation.DefaultAvgMisinformationRisk holds the default value on creation for the avg_misinformation_risk field.
	stateaggregation.DefaultAvgMisinformationRisk = stateaggregationDescAvgMisinformationRisk.Default.(float64)
	// stateaggregationDescMaxMisinformationRisk is the schema descriptor for max_misinformation_risk field.
	stateaggregationDescMaxMisinformationRisk := stateaggregationFields[8].Descriptor()
	// stateaggregation.DefaultMaxMisinformationRisk holds the default value on creation for the max_misinformation_risk field.
	stateaggregation.DefaultMaxMisinformationRisk = stateaggregationDescMaxMisinformationRisk.Default.(float64)
	// stateaggregationDescHeatIntensity is the schema descriptor for heat_intensity field.
	stateaggregationDescHeatIntensity := stateaggregationFields[9].Descriptor()
	// stateaggregation.DefaultHeatIntensity holds the default value on creation for the heat_intensity field.
	stateaggregation.DefaultHeatIntensity = stateaggregationDescHeatIntensity.Default.(float64)
}
