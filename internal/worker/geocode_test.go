package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"marketplace/internal/locator"
	mocklocator "marketplace/internal/locator/mock"
	"marketplace/internal/worker"
	"marketplace/pkg/geocoder"
	"marketplace/pkg/logger"
	"marketplace/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeGeocodeJob(id int64, postalCode string) *river.Job[locator.JobArgs] {
	return &river.Job[locator.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args: locator.JobArgs{
			Target:     locator.TargetTalent,
			ID:         uuid.New(),
			PostalCode: postalCode,
		},
	}
}

// postalCode matches the job args of Locate by postal code.
func postalCode(pc string) gomock.Matcher {
	return gomock.Cond(func(args locator.JobArgs) bool { return args.PostalCode == pc })
}

func status(limit, remaining int, resetIn time.Duration) geocoder.RateLimitStatus {
	return geocoder.RateLimitStatus{Limit: limit, Remaining: remaining, ResetAt: time.Now().Add(resetIn)}
}

func TestGeocodeWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocklocator.NewMockLocator(ctrl)
	w := worker.NewGeocodeWorker(mock)

	mock.EXPECT().Locate(gomock.Any(), postalCode("75011")).Return(status(50, 49, time.Minute), nil)

	require.NoError(t, w.Work(context.Background(), makeGeocodeJob(1, "75011")))
}

func TestGeocodeWorker_Work_CancelsUnlocatable(t *testing.T) {
	for _, kind := range []serrors.Kind{serrors.ErrNotFound, serrors.ErrBadRequest} {
		t.Run(kind.Error(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mock := mocklocator.NewMockLocator(ctrl)
			w := worker.NewGeocodeWorker(mock)

			mock.EXPECT().Locate(gomock.Any(), gomock.Any()).
				Return(status(50, 50, time.Minute), serrors.With(kind, "nope"))

			err := w.Work(context.Background(), makeGeocodeJob(2, "00000"))
			var cancelErr *river.JobCancelError
			require.ErrorAs(t, err, &cancelErr)
		})
	}
}

func TestGeocodeWorker_Work_RateLimitedSnoozes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocklocator.NewMockLocator(ctrl)
	w := worker.NewGeocodeWorker(mock)

	mock.EXPECT().Locate(gomock.Any(), gomock.Any()).
		Return(status(50, 0, 1500*time.Millisecond), serrors.With(serrors.ErrRateLimited, "provider rl"))

	err := w.Work(context.Background(), makeGeocodeJob(3, "69001"))
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	require.GreaterOrEqual(t, snoozeErr.Duration, 1200*time.Millisecond)
	require.LessOrEqual(t, snoozeErr.Duration, 2*time.Second)
}

func TestGeocodeWorker_Work_RateLimitedWithoutResetSnoozesDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocklocator.NewMockLocator(ctrl)
	w := worker.NewGeocodeWorker(mock)

	mock.EXPECT().Locate(gomock.Any(), gomock.Any()).
		Return(geocoder.RateLimitStatus{}, serrors.With(serrors.ErrRateLimited, "provider rl"))

	err := w.Work(context.Background(), makeGeocodeJob(4, "69001"))
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	require.Equal(t, 30*time.Second, snoozeErr.Duration)
}

func TestGeocodeWorker_Work_GenericErrorRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocklocator.NewMockLocator(ctrl)
	w := worker.NewGeocodeWorker(mock)

	boom := errors.New("boom")
	mock.EXPECT().Locate(gomock.Any(), gomock.Any()).Return(status(50, 50, time.Minute), boom)

	err := w.Work(context.Background(), makeGeocodeJob(5, "69001"))
	require.ErrorIs(t, err, boom)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr)
	var snoozeErr *river.JobSnoozeError
	require.NotErrorAs(t, err, &snoozeErr)
}

func TestGeocodeWorker_RL_BlocksSecondUntilFirstFinishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocklocator.NewMockLocator(ctrl)
	w := worker.NewGeocodeWorker(mock)

	firstStarted := make(chan struct{})
	allowFirstToFinish := make(chan struct{})
	secondStarted := make(chan struct{})

	mock.EXPECT().Locate(gomock.Any(), postalCode("11111")).
		DoAndReturn(func(context.Context, locator.JobArgs) (geocoder.RateLimitStatus, error) {
			close(firstStarted)
			<-allowFirstToFinish

			return status(1, 1, time.Minute), nil
		})
	mock.EXPECT().Locate(gomock.Any(), postalCode("22222")).
		DoAndReturn(func(context.Context, locator.JobArgs) (geocoder.RateLimitStatus, error) {
			close(secondStarted)

			return status(1, 1, time.Minute), nil
		})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	// the first request learns the limits and goes through
	go func() { _ = w.Work(ctx, makeGeocodeJob(10, "11111")) }()
	<-firstStarted

	go func() { _ = w.Work(ctx, makeGeocodeJob(11, "22222")) }()

	select {
	case <-secondStarted:
		t.Fatal("second request started before the first finished")
	case <-time.After(100 * time.Millisecond):
	}

	close(allowFirstToFinish)

	select {
	case <-secondStarted:
	case <-time.After(2 * time.Second):
		t.Fatal("second request did not start after the first finished")
	}
}

func TestGeocodeWorker_RL_AllowsUpToRemainingConcurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocklocator.NewMockLocator(ctrl)
	w := worker.NewGeocodeWorker(mock)

	mock.EXPECT().Locate(gomock.Any(), postalCode("00001")).Return(status(2, 2, time.Minute), nil)
	require.NoError(t, w.Work(context.Background(), makeGeocodeJob(20, "00001")))

	bStarted := make(chan struct{})
	cStarted := make(chan struct{})
	dStarted := make(chan struct{})
	finishB := make(chan struct{})
	finishC := make(chan struct{})

	mock.EXPECT().Locate(gomock.Any(), postalCode("00002")).
		DoAndReturn(func(context.Context, locator.JobArgs) (geocoder.RateLimitStatus, error) {
			close(bStarted)
			<-finishB

			return status(2, 2, time.Minute), nil
		})
	mock.EXPECT().Locate(gomock.Any(), postalCode("00003")).
		DoAndReturn(func(context.Context, locator.JobArgs) (geocoder.RateLimitStatus, error) {
			close(cStarted)
			<-finishC

			return status(2, 0, time.Minute), nil
		})
	mock.EXPECT().Locate(gomock.Any(), postalCode("00004")).
		DoAndReturn(func(context.Context, locator.JobArgs) (geocoder.RateLimitStatus, error) {
			close(dStarted)

			return status(2, 1, time.Minute), nil
		})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	go func() { _ = w.Work(ctx, makeGeocodeJob(21, "00002")) }()
	go func() { _ = w.Work(ctx, makeGeocodeJob(22, "00003")) }()

	for _, started := range []chan struct{}{bStarted, cStarted} {
		select {
		case <-started:
		case <-time.After(time.Second):
			t.Fatal("request did not start in time")
		}
	}

	go func() { _ = w.Work(ctx, makeGeocodeJob(23, "00004")) }()

	select {
	case <-dStarted:
		t.Fatal("third request started while the budget was used up")
	case <-time.After(150 * time.Millisecond):
	}

	close(finishB)

	select {
	case <-dStarted:
	case <-time.After(2 * time.Second):
		t.Fatal("third request did not start after one finished")
	}

	close(finishC)
}

func TestGeocodeWorker_RL_WaitsForReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocklocator.NewMockLocator(ctrl)
	w := worker.NewGeocodeWorker(mock)

	resetDelay := 300 * time.Millisecond
	mock.EXPECT().Locate(gomock.Any(), postalCode("00001")).Return(status(5, 0, resetDelay), nil)
	require.NoError(t, w.Work(context.Background(), makeGeocodeJob(30, "00001")))

	started := make(chan struct{})
	start := time.Now()
	mock.EXPECT().Locate(gomock.Any(), postalCode("00002")).
		DoAndReturn(func(context.Context, locator.JobArgs) (geocoder.RateLimitStatus, error) {
			close(started)

			return status(5, 4, time.Minute), nil
		})

	go func() { _ = w.Work(context.Background(), makeGeocodeJob(31, "00002")) }()

	select {
	case <-started:
		require.GreaterOrEqual(t, time.Since(start), resetDelay-75*time.Millisecond,
			"request started before the reset")
	case <-time.After(2 * time.Second):
		t.Fatal("request did not start after the reset")
	}
}

func TestGeocodeWorker_RL_UnblocksOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocklocator.NewMockLocator(ctrl)
	w := worker.NewGeocodeWorker(mock)

	firstStarted := make(chan struct{})
	allowFirstToFinish := make(chan struct{})
	secondStarted := make(chan struct{})

	mock.EXPECT().Locate(gomock.Any(), postalCode("11111")).
		DoAndReturn(func(context.Context, locator.JobArgs) (geocoder.RateLimitStatus, error) {
			close(firstStarted)
			<-allowFirstToFinish

			return status(1, 1, time.Minute), errors.New("boom")
		})
	mock.EXPECT().Locate(gomock.Any(), postalCode("22222")).
		DoAndReturn(func(context.Context, locator.JobArgs) (geocoder.RateLimitStatus, error) {
			close(secondStarted)

			return status(1, 1, time.Minute), nil
		})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	go func() { _ = w.Work(ctx, makeGeocodeJob(40, "11111")) }()
	<-firstStarted

	go func() { _ = w.Work(ctx, makeGeocodeJob(41, "22222")) }()

	select {
	case <-secondStarted:
		t.Fatal("second request started before the first failed")
	case <-time.After(100 * time.Millisecond):
	}

	close(allowFirstToFinish)

	select {
	case <-secondStarted:
	case <-time.After(2 * time.Second):
		t.Fatal("second request did not start after the first failed")
	}
}

func TestGeocodeWorker_RL_ContextDoneWhileWaiting(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocklocator.NewMockLocator(ctrl)
	w := worker.NewGeocodeWorker(mock)

	mock.EXPECT().Locate(gomock.Any(), postalCode("00001")).Return(status(5, 0, time.Minute), nil)
	require.NoError(t, w.Work(context.Background(), makeGeocodeJob(50, "00001")))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := w.Work(ctx, makeGeocodeJob(51, "00002"))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
