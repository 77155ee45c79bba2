package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"petromap/internal/domain/entities"
	"petromap/internal/domain/filter"
	mock_interfaces "petromap/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newTestUseCase(t *testing.T) (*RequestUseCase, *mock_interfaces.MockIRequestRepository, *mock_interfaces.MockIPumpRepository, *mock_interfaces.MockIUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mock_interfaces.NewMockIRequestRepository(ctrl)
	pumpRepo := mock_interfaces.NewMockIPumpRepository(ctrl)
	userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
	uc := NewRequestUseCase(repo, pumpRepo, userRepo, nil)
	return uc, repo, pumpRepo, userRepo
}

func pendingFixture(id string) entities.PumpRequest {
	return entities.PumpRequest{
		ID:     id,
		Status: entities.RequestStatusPending,
		RequestDetails: entities.RequestDetails{
			CustomerName: "Shree Fuel Point",
			Company:      "HPCL",
			District:     "Pune",
		},
		RequestedByUserID: "user-7",
		CreatedAt:         time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC),
	}
}

func TestRequestUseCase_List(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)
		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.List(context.Background(), filter.NewState(entities.RequestStatusPending))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("applies filter to fresh scan", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)
		approved := pendingFixture("2")
		approved.Status = entities.RequestStatusApproved
		repo.EXPECT().List(gomock.Any()).Return([]entities.PumpRequest{pendingFixture("1"), approved}, nil)

		got, err := uc.List(context.Background(), filter.NewState(entities.RequestStatusPending))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "1" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}

func TestRequestUseCase_Counts(t *testing.T) {
	uc, repo, _, _ := newTestUseCase(t)
	approved := pendingFixture("2")
	approved.Status = entities.RequestStatusApproved
	repo.EXPECT().List(gomock.Any()).Return([]entities.PumpRequest{pendingFixture("1"), approved}, nil)

	counts, err := uc.Counts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counts[entities.RequestStatusPending] != 1 || counts[entities.RequestStatusApproved] != 1 || counts[entities.RequestStatusRejected] != 0 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

func TestRequestUseCase_Get(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _, _, _ := newTestUseCase(t)
		_, err := uc.Get(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidRequestID) {
			t.Fatalf("expected ErrInvalidRequestID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.PumpRequest{}, nil)

		_, err := uc.Get(context.Background(), "missing")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("success trims id", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(pendingFixture("req-1"), nil)

		got, err := uc.Get(context.Background(), " req-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "req-1" {
			t.Fatalf("unexpected request: %+v", got)
		}
	})
}

func TestRequestUseCase_Submitter(t *testing.T) {
	t.Run("empty user id", func(t *testing.T) {
		uc, _, _, _ := newTestUseCase(t)
		if got := uc.Submitter(context.Background(), "  "); got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})

	t.Run("document id hit skips fallback", func(t *testing.T) {
		uc, _, _, userRepo := newTestUseCase(t)
		userRepo.EXPECT().GetByID(gomock.Any(), "user-7").Return(entities.UserProfile{UserID: "user-7", Name: "Asha"}, nil)

		got := uc.Submitter(context.Background(), "user-7")
		if got == nil || got.Name != "Asha" {
			t.Fatalf("unexpected profile: %+v", got)
		}
	})

	t.Run("fallback query hit", func(t *testing.T) {
		uc, _, _, userRepo := newTestUseCase(t)
		userRepo.EXPECT().GetByID(gomock.Any(), "user-7").Return(entities.UserProfile{}, nil)
		userRepo.EXPECT().FindByUserID(gomock.Any(), "user-7").Return(entities.UserProfile{UserID: "user-7", Name: "Asha"}, nil)

		got := uc.Submitter(context.Background(), "user-7")
		if got == nil || got.Name != "Asha" {
			t.Fatalf("unexpected profile: %+v", got)
		}
	})

	t.Run("both stages miss", func(t *testing.T) {
		uc, _, _, userRepo := newTestUseCase(t)
		userRepo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.UserProfile{}, nil)
		userRepo.EXPECT().FindByUserID(gomock.Any(), "ghost").Return(entities.UserProfile{}, nil)

		if got := uc.Submitter(context.Background(), "ghost"); got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})

	t.Run("store errors are swallowed", func(t *testing.T) {
		uc, _, _, userRepo := newTestUseCase(t)
		userRepo.EXPECT().GetByID(gomock.Any(), "user-7").Return(entities.UserProfile{}, errors.New("db"))
		userRepo.EXPECT().FindByUserID(gomock.Any(), "user-7").Return(entities.UserProfile{}, errors.New("db"))

		if got := uc.Submitter(context.Background(), "user-7"); got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})
}

func TestRequestUseCase_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PumpRequest{})).DoAndReturn(
			func(_ context.Context, r entities.PumpRequest) (entities.PumpRequest, error) {
				if r.ID == "" {
					t.Fatalf("expected generated id")
				}
				if r.Status != entities.RequestStatusPending {
					t.Fatalf("expected pending status, got %s", r.Status)
				}
				if r.CreatedBy != "admin-1" || r.CreatedAt.IsZero() {
					t.Fatalf("unexpected audit fields: %+v", r)
				}
				if r.CustomerName != "Shree Fuel Point" {
					t.Fatalf("details not carried: %+v", r)
				}
				return r, nil
			},
		)

		got, err := uc.Create(context.Background(), entities.RequestDetails{CustomerName: "Shree Fuel Point"}, "admin-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" {
			t.Fatalf("expected created request, got %+v", got)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PumpRequest{}, errors.New("db"))

		_, err := uc.Create(context.Background(), entities.RequestDetails{}, "admin-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestRequestUseCase_Approve(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _, _, _ := newTestUseCase(t)
		_, _, err := uc.Approve(context.Background(), "  ", "admin-1")
		if !errors.Is(err, ErrInvalidRequestID) {
			t.Fatalf("expected ErrInvalidRequestID, got %v", err)
		}
	})

	t.Run("not found before update", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.PumpRequest{}, nil)

		_, _, err := uc.Approve(context.Background(), "missing", "admin-1")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("success publishes one pump", func(t *testing.T) {
		uc, repo, pumpRepo, _ := newTestUseCase(t)

		approvedAt := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
		stored := pendingFixture("req-1")
		stored.Company = ""
		updated := stored
		updated.Status = entities.RequestStatusApproved
		updated.ApprovedAt = approvedAt
		updated.ApprovedBy = "admin-1"

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(stored, nil)
		repo.EXPECT().ApproveByID(gomock.Any(), "req-1", "admin-1").Return(updated, nil)
		pumpRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PetrolPump{})).DoAndReturn(
			func(_ context.Context, p entities.PetrolPump) (entities.PetrolPump, error) {
				if p.ID == "" || p.RequestID != "req-1" {
					t.Fatalf("unexpected pump identity: %+v", p)
				}
				if p.Status != entities.PumpStatusActive || !p.IsVerified {
					t.Fatalf("unexpected pump state: %+v", p)
				}
				if p.Company != entities.DefaultCompany {
					t.Fatalf("expected company fallback, got %q", p.Company)
				}
				if !p.ApprovedAt.Equal(approvedAt) || p.ApprovedBy != "admin-1" {
					t.Fatalf("unexpected approval stamp: %+v", p)
				}
				return p, nil
			},
		)

		gotReq, gotPump, err := uc.Approve(context.Background(), "req-1", "admin-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotReq.Status != entities.RequestStatusApproved {
			t.Fatalf("unexpected request: %+v", gotReq)
		}
		if gotPump.RequestID != "req-1" {
			t.Fatalf("unexpected pump: %+v", gotPump)
		}
	})

	t.Run("pump publish failure surfaces after status update", func(t *testing.T) {
		uc, repo, pumpRepo, _ := newTestUseCase(t)

		stored := pendingFixture("req-1")
		updated := stored
		updated.Status = entities.RequestStatusApproved

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(stored, nil)
		repo.EXPECT().ApproveByID(gomock.Any(), "req-1", "admin-1").Return(updated, nil)
		pumpRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PetrolPump{}, errors.New("insert failed"))

		_, _, err := uc.Approve(context.Background(), "req-1", "admin-1")
		if err == nil || err.Error() != "insert failed" {
			t.Fatalf("expected insert failure, got %v", err)
		}
	})
}

func TestRequestUseCase_Reject(t *testing.T) {
	t.Run("empty reason", func(t *testing.T) {
		uc, _, _, _ := newTestUseCase(t)
		_, err := uc.Reject(context.Background(), "req-1", "   ", "admin-1")
		if !errors.Is(err, ErrEmptyRejectionReason) {
			t.Fatalf("expected ErrEmptyRejectionReason, got %v", err)
		}
	})

	t.Run("stores trimmed reason", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)

		updated := pendingFixture("req-1")
		updated.Status = entities.RequestStatusRejected
		updated.RejectionReason = "incomplete documents"
		repo.EXPECT().RejectByID(gomock.Any(), "req-1", "admin-1", "incomplete documents").Return(updated, nil)

		got, err := uc.Reject(context.Background(), "req-1", "  incomplete documents  ", "admin-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.RequestStatusRejected || got.RejectionReason != "incomplete documents" {
			t.Fatalf("unexpected request: %+v", got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)
		repo.EXPECT().RejectByID(gomock.Any(), "missing", "admin-1", "why").Return(entities.PumpRequest{}, nil)

		_, err := uc.Reject(context.Background(), "missing", "why", "admin-1")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})
}

func TestRequestUseCase_Edit(t *testing.T) {
	t.Run("coerces coordinates", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)

		repo.EXPECT().UpdateDetailsByID(gomock.Any(), "req-1", gomock.AssignableToTypeOf(entities.RequestDetails{}), "admin-1").DoAndReturn(
			func(_ context.Context, id string, d entities.RequestDetails, _ string) (entities.PumpRequest, error) {
				if !math.IsNaN(d.Latitude) {
					t.Fatalf("expected NaN latitude, got %v", d.Latitude)
				}
				if d.Longitude != 0 {
					t.Fatalf("expected zero longitude for empty input, got %v", d.Longitude)
				}
				if d.CustomerName != "Renamed" {
					t.Fatalf("unexpected details: %+v", d)
				}
				req := pendingFixture(id)
				req.RequestDetails = d
				return req, nil
			},
		)

		patch := EditPatch{CustomerName: "Renamed", Latitude: "not-a-number", Longitude: ""}
		got, err := uc.Edit(context.Background(), "req-1", patch, "admin-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.CustomerName != "Renamed" {
			t.Fatalf("unexpected request: %+v", got)
		}
	})

	t.Run("parses numeric coordinates", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)

		repo.EXPECT().UpdateDetailsByID(gomock.Any(), "req-1", gomock.Any(), "admin-1").DoAndReturn(
			func(_ context.Context, id string, d entities.RequestDetails, _ string) (entities.PumpRequest, error) {
				if d.Latitude != 18.5204 || d.Longitude != 73.8567 {
					t.Fatalf("unexpected coordinates: %v %v", d.Latitude, d.Longitude)
				}
				return pendingFixture(id), nil
			},
		)

		patch := EditPatch{Latitude: " 18.5204 ", Longitude: "73.8567"}
		if _, err := uc.Edit(context.Background(), "req-1", patch, "admin-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)
		repo.EXPECT().UpdateDetailsByID(gomock.Any(), "missing", gomock.Any(), "admin-1").Return(entities.PumpRequest{}, nil)

		_, err := uc.Edit(context.Background(), "missing", EditPatch{}, "admin-1")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})
}

func TestRequestUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _, _, _ := newTestUseCase(t)
		if err := uc.Delete(context.Background(), "  "); !errors.Is(err, ErrInvalidRequestID) {
			t.Fatalf("expected ErrInvalidRequestID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, repo, _, _ := newTestUseCase(t)
		repo.EXPECT().DeleteByID(gomock.Any(), "req-1").Return(nil)

		if err := uc.Delete(context.Background(), "req-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
