package locator_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"marketplace/internal/locator"
	"marketplace/pkg/domain"
	"marketplace/pkg/geocoder"
	mockgeocoder "marketplace/pkg/geocoder/mock"
	"marketplace/pkg/metrics"
	"marketplace/pkg/serrors"
	mockstorage "marketplace/pkg/storage/mock"
)

var lyon = domain.Coordinates{Lat: 45.758, Lon: 4.835}

func newTestLocator(t *testing.T) (*mockstorage.MockStorage, *mockgeocoder.MockClient, *prometheus.Registry, locator.Locator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	gc := mockgeocoder.NewMockClient(ctrl)
	reg := prometheus.NewRegistry()

	return st, gc, reg, locator.New(st, gc, metrics.NewRecorder(reg))
}

func TestLocator_Locate(t *testing.T) {
	rl := geocoder.RateLimitStatus{Limit: 50, Remaining: 49, ResetAt: time.Now().Add(time.Second)}
	query := geocoder.Query{PostalCode: "69001", City: "Lyon"}
	result := geocoder.Result{Location: lyon, Label: "Lyon", Confidence: 0.9}

	t.Run("talent", func(t *testing.T) {
		st, gc, reg, l := newTestLocator(t)
		id := uuid.New()

		gc.EXPECT().Geocode(gomock.Any(), query).Return(result, rl, nil)
		st.EXPECT().UpdateTalentLocation(gomock.Any(), domain.UserID(id), "69001", lyon).Return(true, nil)

		got, err := l.Locate(context.Background(), locator.JobArgs{
			Target: locator.TargetTalent, ID: id, PostalCode: "69001", City: "Lyon",
		})
		require.NoError(t, err)
		require.Equal(t, rl, got)

		n, err := testutil.GatherAndCount(reg, "marketplace_geocoder_requests_total")
		require.NoError(t, err)
		require.Equal(t, 1, n)
	})

	t.Run("project with changed postal code", func(t *testing.T) {
		st, gc, _, l := newTestLocator(t)
		id := uuid.New()

		gc.EXPECT().Geocode(gomock.Any(), query).Return(result, rl, nil)
		st.EXPECT().UpdateProjectLocation(gomock.Any(), domain.ProjectID(id), "69001", lyon).Return(false, nil)

		_, err := l.Locate(context.Background(), locator.JobArgs{
			Target: locator.TargetProject, ID: id, PostalCode: "69001", City: "Lyon",
		})
		require.NoError(t, err)
	})
}

func TestLocator_Locate_Errors(t *testing.T) {
	t.Run("unknown target", func(t *testing.T) {
		_, _, _, l := newTestLocator(t)

		_, err := l.Locate(context.Background(), locator.JobArgs{Target: "user", PostalCode: "69001"})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("rate limited keeps the status", func(t *testing.T) {
		_, gc, _, l := newTestLocator(t)
		rl := geocoder.RateLimitStatus{Limit: 50, ResetAt: time.Now().Add(time.Second)}

		gc.EXPECT().Geocode(gomock.Any(), gomock.Any()).
			Return(geocoder.Result{}, rl, serrors.With(serrors.ErrRateLimited, "slow down"))

		got, err := l.Locate(context.Background(), locator.JobArgs{Target: locator.TargetTalent, PostalCode: "69001"})
		require.ErrorIs(t, err, serrors.ErrRateLimited)
		require.Equal(t, rl, got)
	})

	t.Run("not found", func(t *testing.T) {
		_, gc, _, l := newTestLocator(t)

		gc.EXPECT().Geocode(gomock.Any(), gomock.Any()).
			Return(geocoder.Result{}, geocoder.RateLimitStatus{}, serrors.With(serrors.ErrNotFound, "no match"))

		_, err := l.Locate(context.Background(), locator.JobArgs{Target: locator.TargetProject, PostalCode: "00000"})
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("storage error", func(t *testing.T) {
		st, gc, _, l := newTestLocator(t)
		dbErr := errors.New("db down")

		gc.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(geocoder.Result{Location: lyon}, geocoder.RateLimitStatus{}, nil)
		st.EXPECT().UpdateTalentLocation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, dbErr)

		_, err := l.Locate(context.Background(), locator.JobArgs{Target: locator.TargetTalent, PostalCode: "69001"})
		require.ErrorIs(t, err, dbErr)
	})
}
