package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "railmadad/internal/delivery/context"
	"railmadad/internal/domain/entity"
	domainerrors "railmadad/internal/domain/errors"
	"railmadad/internal/domain/service"

	"github.com/pkg/errors"
)

// roleRequest carries what role resolution needs from the sign-in step.
type roleRequest struct {
	auth        *entity.AuthResult
	defaultRole entity.Role // role written when a store has no record yet
	details     entity.ProfileDetails
}

// roleResolution is the outcome of role resolution. It never fails: store
// problems are reported as notices and the role falls back to passenger.
type roleResolution struct {
	role       entity.Role
	firstLogin bool
	notices    []*domainerrors.Notice
}

func (r *roleResolution) addNotice(err *domainerrors.BaseError) {
	for _, n := range r.notices {
		if n.Code == err.ErrorCode() {
			return
		}
	}
	r.notices = append(r.notices, domainerrors.NoticeFrom(err, 0))
}

// roleResolver queries the backend first and the profile store second, one
// after the other, bootstrapping each at most once.
type roleResolver struct {
	backend  service.BackendProfileClient
	profiles service.ProfileStore
	now      func() time.Time
	logger   *slog.Logger
}

func newRoleResolver(backend service.BackendProfileClient, profiles service.ProfileStore, logger *slog.Logger) *roleResolver {
	return &roleResolver{
		backend:  backend,
		profiles: profiles,
		now:      time.Now,
		logger:   logger,
	}
}

func (r *roleResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

func (r *roleResolver) resolve(ctx context.Context, req *roleRequest) *roleResolution {
	res := &roleResolution{}
	defaultRole := req.defaultRole.OrDefault()
	identity := req.auth.Identity

	// 1. Backend profile, created on first sight.
	var backendRole entity.Role
	profile, err := r.backend.FetchProfile(ctx, req.auth.IDToken)
	switch {
	case err == nil:
		backendRole = profile.Role()
	case errors.Is(err, domainerrors.ErrBackendProfileNotFound):
		res.firstLogin = true
		backendRole = r.bootstrapBackend(ctx, req, defaultRole, res)
	default:
		r.log(ctx).Warn("Backend profile fetch failed",
			slog.String("uid", identity.ProviderUserID),
			slog.Any("error", err))
		res.addNotice(domainerrors.ErrBackendSyncFailed)
	}

	// 2. Profile store, created on first sight. A read failure only matters
	// to the user when the backend gave no role either.
	profileRole := r.profileRole(ctx, req, defaultRole, res, !backendRole.IsValid())

	// 3. Backend wins, then the profile store, then passenger.
	switch {
	case backendRole.IsValid():
		res.role = backendRole
	case profileRole.IsValid():
		res.role = profileRole
	default:
		res.role = entity.RolePassenger
	}

	r.log(ctx).Debug("Role resolved",
		slog.String("uid", identity.ProviderUserID),
		slog.String("role", res.role.String()),
		slog.String("backend_role", backendRole.String()),
		slog.String("profile_role", profileRole.String()),
		slog.Bool("first_login", res.firstLogin))

	return res
}

func (r *roleResolver) bootstrapBackend(ctx context.Context, req *roleRequest, role entity.Role, res *roleResolution) entity.Role {
	identity := req.auth.Identity
	input := &entity.BackendProfileInput{
		Email:        identity.Email,
		Name:         firstNonEmpty(req.details.Name, identity.DisplayName),
		PhoneNumber:  req.details.PhoneNumber,
		Gender:       req.details.Gender,
		Address:      req.details.Address,
		UserType:     role,
		ProfileImage: firstNonEmpty(req.details.ProfileImageURL, identity.PhotoURL),
	}

	created, err := r.backend.CreateProfile(ctx, req.auth.IDToken, input)
	if err != nil {
		r.log(ctx).Warn("Backend profile create failed",
			slog.String("uid", identity.ProviderUserID),
			slog.Any("error", err))
		res.addNotice(domainerrors.ErrBackendSyncFailed)

		return ""
	}

	r.log(ctx).Info("Backend profile created",
		slog.String("uid", identity.ProviderUserID),
		slog.String("role", role.String()))

	if created != nil && created.UserType != "" {
		return created.Role()
	}

	return role
}

func (r *roleResolver) profileRole(ctx context.Context, req *roleRequest, role entity.Role, res *roleResolution, noticeReadFailure bool) entity.Role {
	identity := req.auth.Identity

	rec, err := r.profiles.GetProfile(ctx, identity.ProviderUserID)
	if err != nil {
		r.log(ctx).Warn("Profile store read failed",
			slog.String("uid", identity.ProviderUserID),
			slog.Any("error", err))
		if noticeReadFailure {
			res.addNotice(domainerrors.ErrBackendSyncFailed)
		}

		return ""
	}
	if rec != nil {
		return rec.Role.OrDefault()
	}

	rec = &entity.ProfileRecord{
		ProviderUserID:  identity.ProviderUserID,
		Name:            firstNonEmpty(req.details.Name, identity.DisplayName),
		Email:           identity.Email,
		Role:            role,
		PhoneNumber:     req.details.PhoneNumber,
		Gender:          req.details.Gender,
		Address:         req.details.Address,
		ProfileImageURL: firstNonEmpty(req.details.ProfileImageURL, identity.PhotoURL),
		CreatedAt:       r.now(),
	}
	if err := r.profiles.CreateProfile(ctx, rec); err != nil {
		r.log(ctx).Warn("Profile store create failed",
			slog.String("uid", identity.ProviderUserID),
			slog.Any("error", err))
		res.addNotice(domainerrors.ErrProfileCreateFailed)

		return ""
	}

	return role
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
