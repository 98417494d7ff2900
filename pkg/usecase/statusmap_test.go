package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/herald/pkg/domain/model"
	"github.com/m-mizutani/herald/pkg/usecase"
)

func TestMapStatus_DecisionTable(t *testing.T) {
	tests := []struct {
		name     string
		result   model.Result
		policy   model.SourcePolicy
		flavor   model.Flavor
		wantStat model.Status
		wantDesc string
	}{
		{
			name:     "Success",
			result:   model.ResultSuccess,
			flavor:   model.FlavorCloud,
			wantStat: model.StatusSuccessful,
			wantDesc: "This commit looks good.",
		},
		{
			name:     "Unstable reported as success when policy allows",
			result:   model.ResultUnstable,
			policy:   model.SourcePolicy{SendSuccessForUnstable: true},
			flavor:   model.FlavorCloud,
			wantStat: model.StatusSuccessful,
			wantDesc: "This commit has test failures.",
		},
		{
			name:     "Unstable reported as failure by default",
			result:   model.ResultUnstable,
			flavor:   model.FlavorCloud,
			wantStat: model.StatusFailed,
			wantDesc: "This commit has test failures.",
		},
		{
			name:     "Failure",
			result:   model.ResultFailure,
			flavor:   model.FlavorServer,
			wantStat: model.StatusFailed,
			wantDesc: "There was a failure building this commit.",
		},
		{
			name:     "Not built suppressed on cloud becomes stopped",
			result:   model.ResultNotBuilt,
			policy:   model.SourcePolicy{DisableNotificationForNotBuilt: true},
			flavor:   model.FlavorCloud,
			wantStat: model.StatusStopped,
			wantDesc: "This commit was not built (probably the build was skipped)",
		},
		{
			name:     "Not built suppressed on server sends nothing",
			result:   model.ResultNotBuilt,
			policy:   model.SourcePolicy{DisableNotificationForNotBuilt: true},
			flavor:   model.FlavorServer,
			wantStat: model.StatusNone,
			wantDesc: "This commit was not built (probably the build was skipped)",
		},
		{
			name:     "Not built reported as success by default",
			result:   model.ResultNotBuilt,
			flavor:   model.FlavorCloud,
			wantStat: model.StatusSuccessful,
			wantDesc: "This commit was not built (probably the build was skipped)",
		},
		{
			name:     "Aborted reported as failure",
			result:   model.ResultAborted,
			flavor:   model.FlavorCloud,
			wantStat: model.StatusFailed,
			wantDesc: "Something is wrong with the build of this commit.",
		},
		{
			name:     "Unknown terminal result reported as failure",
			result:   model.Result("CANCELLED"),
			flavor:   model.FlavorServer,
			wantStat: model.StatusFailed,
			wantDesc: "Something is wrong with the build of this commit.",
		},
		{
			name:     "Still running reported as in progress",
			result:   model.ResultNone,
			flavor:   model.FlavorCloud,
			wantStat: model.StatusInProgress,
			wantDesc: "The build is in progress...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, desc := usecase.MapStatus(tt.result, "", tt.policy, tt.flavor)
			gt.Value(t, state).Equal(tt.wantStat)
			gt.Value(t, desc).Equal(tt.wantDesc)
		})
	}
}

func TestMapStatus_DescriptionSanitization(t *testing.T) {
	tests := []struct {
		name     string
		desc     string
		wantDesc string
	}{
		{
			name:     "Single line passes through",
			desc:     "All good",
			wantDesc: "All good",
		},
		{
			name:     "Two lines pass through",
			desc:     "line one\nline two",
			wantDesc: "line one\nline two",
		},
		{
			name:     "Three lines are replaced by the default",
			desc:     "one\ntwo\nthree",
			wantDesc: "This commit looks good.",
		},
		{
			name:     "HTML-looking text is replaced by the default",
			desc:     "<b>fancy</b>",
			wantDesc: "This commit looks good.",
		},
		{
			name:     "Blank description is replaced by the default",
			desc:     "   ",
			wantDesc: "This commit looks good.",
		},
		{
			name:     "Empty description is replaced by the default",
			desc:     "",
			wantDesc: "This commit looks good.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, desc := usecase.MapStatus(model.ResultSuccess, tt.desc, model.SourcePolicy{}, model.FlavorCloud)
			gt.Value(t, state).Equal(model.StatusSuccessful)
			gt.Value(t, desc).Equal(tt.wantDesc)
		})
	}
}
