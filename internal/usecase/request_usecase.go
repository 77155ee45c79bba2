package usecase

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"petromap/internal/domain/entities"
	"petromap/internal/domain/filter"
	"petromap/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrRequestNotFound      = errors.New("request not found")
	ErrInvalidRequestID     = errors.New("invalid request id")
	ErrEmptyRejectionReason = errors.New("rejection reason is required")
)

// EditPatch carries the caller-supplied values for an edit. Every field of
// the allow-list is overwritten; there is no field-level validation.
// Latitude and Longitude arrive as the raw form text: they are coerced to
// numbers before persistence, and non-numeric input is stored as NaN.
type EditPatch struct {
	CustomerName   string
	Location       string
	Zone           string
	SalesArea      string
	CoClDo         string
	District       string
	SapCode        string
	AddressLine1   string
	AddressLine2   string
	Pincode        string
	DealerName     string
	ContactDetails string
	Latitude       string
	Longitude      string
	Company        string
	RegionalOffice string
}

// IRequestUseCase exposes the review workflow for pump registration
// requests.
//
// Every mutating operation stamps the acting admin's id and, on success,
// leaves the store as the single source of truth: List always scans the
// collection fresh, so the next render recomputes against ground truth.

type IRequestUseCase interface {
	List(ctx context.Context, s filter.State) ([]entities.PumpRequest, error)
	Counts(ctx context.Context) (map[entities.RequestStatus]int, error)
	Get(ctx context.Context, id string) (entities.PumpRequest, error)
	Submitter(ctx context.Context, userID string) *entities.UserProfile
	Create(ctx context.Context, details entities.RequestDetails, actor string) (entities.PumpRequest, error)
	Approve(ctx context.Context, id, actor string) (entities.PumpRequest, entities.PetrolPump, error)
	Reject(ctx context.Context, id, reason, actor string) (entities.PumpRequest, error)
	Edit(ctx context.Context, id string, patch EditPatch, actor string) (entities.PumpRequest, error)
	Delete(ctx context.Context, id string) error
}

type RequestUseCase struct {
	repo     interfaces.IRequestRepository
	pumpRepo interfaces.IPumpRepository
	userRepo interfaces.IUserRepository
	log      logrus.FieldLogger
	now      func() time.Time
}

var _ IRequestUseCase = (*RequestUseCase)(nil)

func NewRequestUseCase(repo interfaces.IRequestRepository, pumpRepo interfaces.IPumpRepository, userRepo interfaces.IUserRepository, log logrus.FieldLogger) *RequestUseCase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &RequestUseCase{
		repo:     repo,
		pumpRepo: pumpRepo,
		userRepo: userRepo,
		log:      log,
		now:      time.Now,
	}
}

// List scans the request collection fresh and applies the filter chain.
// Ordering (creation time descending) comes from the repository and is
// preserved by the filter.
func (u *RequestUseCase) List(ctx context.Context, s filter.State) ([]entities.PumpRequest, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Visible(all, s, u.now()), nil
}

// Counts tallies the unfiltered collection per status for the tab badges.
func (u *RequestUseCase) Counts(ctx context.Context) (map[entities.RequestStatus]int, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.CountByStatus(all), nil
}

func (u *RequestUseCase) Get(ctx context.Context, id string) (entities.PumpRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PumpRequest{}, ErrInvalidRequestID
	}

	req, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PumpRequest{}, err
	}
	if req.ID == "" {
		return entities.PumpRequest{}, ErrRequestNotFound
	}
	return req, nil
}

// Submitter resolves the profile of the user who filed a request. The
// lookup is best effort: it first treats the stored id as a document key
// and falls back to a query on the userId field. A miss, or a store error,
// simply leaves the panel empty.
func (u *RequestUseCase) Submitter(ctx context.Context, userID string) *entities.UserProfile {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil
	}

	profile, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		u.log.WithError(err).WithField("user_id", userID).Warn("submitter lookup by document id failed")
	} else if profile.UserID != "" {
		return &profile
	}

	profile, err = u.userRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.WithError(err).WithField("user_id", userID).Warn("submitter lookup by userId field failed")
		return nil
	}
	if profile.UserID == "" {
		return nil
	}
	return &profile
}

// Create inserts a new pending request. There is no duplicate check; two
// identical submissions yield two queue entries.
func (u *RequestUseCase) Create(ctx context.Context, details entities.RequestDetails, actor string) (entities.PumpRequest, error) {
	now := u.now().UTC()
	req := entities.PumpRequest{
		ID:             uuid.NewString(),
		Status:         entities.RequestStatusPending,
		RequestDetails: details,
		CreatedAt:      now,
		CreatedBy:      actor,
	}

	created, err := u.repo.Create(ctx, req)
	if err != nil {
		return entities.PumpRequest{}, err
	}
	u.log.WithFields(logrus.Fields{"request_id": created.ID, "actor": actor}).Info("request created")
	return created, nil
}

// Approve marks the request approved and publishes a PetrolPump entry
// copying its descriptive fields. The request is re-read from the store at
// call time; a stale local copy is never trusted.
//
// The two writes are independent calls with no transaction: if the pump
// insert fails after the status update succeeded, the store is left with an
// approved request and no published location, and the caller only learns of
// it through the surfaced error. Approving an already-terminal request is
// not guarded either; both behaviors are inherited from the screens this
// replaces.
func (u *RequestUseCase) Approve(ctx context.Context, id, actor string) (entities.PumpRequest, entities.PetrolPump, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PumpRequest{}, entities.PetrolPump{}, ErrInvalidRequestID
	}

	req, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PumpRequest{}, entities.PetrolPump{}, err
	}
	if req.ID == "" {
		return entities.PumpRequest{}, entities.PetrolPump{}, ErrRequestNotFound
	}

	updated, err := u.repo.ApproveByID(ctx, id, actor)
	if err != nil {
		return entities.PumpRequest{}, entities.PetrolPump{}, err
	}
	if updated.ID == "" {
		return entities.PumpRequest{}, entities.PetrolPump{}, ErrRequestNotFound
	}

	pump := entities.NewPetrolPumpFromRequest(uuid.NewString(), updated, actor, updated.ApprovedAt)
	created, err := u.pumpRepo.Create(ctx, pump)
	if err != nil {
		u.log.WithError(err).WithField("request_id", id).Error("pump publish failed after status update")
		return entities.PumpRequest{}, entities.PetrolPump{}, err
	}

	u.log.WithFields(logrus.Fields{"request_id": id, "pump_id": created.ID, "actor": actor}).Info("request approved")
	return updated, created, nil
}

// Reject marks the request rejected with the trimmed reason. An empty or
// whitespace-only reason fails validation before anything is written.
func (u *RequestUseCase) Reject(ctx context.Context, id, reason, actor string) (entities.PumpRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PumpRequest{}, ErrInvalidRequestID
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.PumpRequest{}, ErrEmptyRejectionReason
	}

	updated, err := u.repo.RejectByID(ctx, id, actor, reason)
	if err != nil {
		return entities.PumpRequest{}, err
	}
	if updated.ID == "" {
		return entities.PumpRequest{}, ErrRequestNotFound
	}

	u.log.WithFields(logrus.Fields{"request_id": id, "actor": actor}).Info("request rejected")
	return updated, nil
}

// Edit overwrites the allow-listed descriptive fields with the patch
// values, regardless of the request's status, and stamps the updater.
func (u *RequestUseCase) Edit(ctx context.Context, id string, patch EditPatch, actor string) (entities.PumpRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PumpRequest{}, ErrInvalidRequestID
	}

	details := entities.RequestDetails{
		CustomerName:   patch.CustomerName,
		Location:       patch.Location,
		Zone:           patch.Zone,
		SalesArea:      patch.SalesArea,
		CoClDo:         patch.CoClDo,
		District:       patch.District,
		SapCode:        patch.SapCode,
		AddressLine1:   patch.AddressLine1,
		AddressLine2:   patch.AddressLine2,
		Pincode:        patch.Pincode,
		DealerName:     patch.DealerName,
		ContactDetails: patch.ContactDetails,
		Latitude:       coerceCoordinate(patch.Latitude),
		Longitude:      coerceCoordinate(patch.Longitude),
		Company:        patch.Company,
		RegionalOffice: patch.RegionalOffice,
	}

	updated, err := u.repo.UpdateDetailsByID(ctx, id, details, actor)
	if err != nil {
		return entities.PumpRequest{}, err
	}
	if updated.ID == "" {
		return entities.PumpRequest{}, ErrRequestNotFound
	}

	u.log.WithFields(logrus.Fields{"request_id": id, "actor": actor}).Info("request updated")
	return updated, nil
}

// Delete removes the request document outright. There is no soft delete
// and no audit trail; deleting an absent id is not an error.
func (u *RequestUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRequestID
	}
	if err := u.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	u.log.WithField("request_id", id).Info("request deleted")
	return nil
}

// coerceCoordinate mirrors the forms' numeric coercion: empty input counts
// as zero, anything else non-numeric becomes NaN and is stored as-is.
func coerceCoordinate(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
