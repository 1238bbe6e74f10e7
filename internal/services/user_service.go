package services

import (
	"errors"

	"pharmacare_backend/internal/logger"
	"pharmacare_backend/internal/models"
	"pharmacare_backend/internal/repositories"
	"pharmacare_backend/internal/services/dto"
	"pharmacare_backend/pkg/apperrors"
)

// UserService - admin account management.
type UserService interface {
	List(query dto.UserListQuery) (*dto.UserListResponse, error)
	Get(id string) (*models.User, error)
	Detail(id string) (*dto.UserDetailResponse, error)
	Update(id string, req dto.UpdateUserRequest) (*models.User, error)
	Delete(actorID, id string) error
}

type UserServiceImpl struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) UserService {
	return &UserServiceImpl{users: users}
}

func (s *UserServiceImpl) List(query dto.UserListQuery) (*dto.UserListResponse, error) {
	filter := repositories.UserFilter{
		Role:   query.Role,
		Search: query.Search,
		Page:   query.Page,
		Limit:  query.Limit,
	}

	users, total, err := s.users.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.UserListResponse{
		Users:      users,
		Pagination: dto.NewPagination(total, query.Page, query.Limit),
	}, nil
}

func (s *UserServiceImpl) Get(id string) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// Detail adds the account's latest orders, prescriptions and reviews for
// the back-office profile page.
func (s *UserServiceImpl) Detail(id string) (*dto.UserDetailResponse, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	const recentLimit = 5

	orders, err := s.users.RecentOrders(id, recentLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	prescriptions, err := s.users.RecentPrescriptions(id, recentLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	reviews, err := s.users.RecentReviews(id, recentLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.UserDetailResponse{
		User:                user,
		RecentOrders:        orders,
		RecentPrescriptions: prescriptions,
		RecentReviews:       reviews,
	}, nil
}

func (s *UserServiceImpl) Update(id string, req dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.EmailVerified != nil {
		user.EmailVerified = *req.EmailVerified
	}
	if req.PhoneVerified != nil {
		user.PhoneVerified = *req.PhoneVerified
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.City != nil {
		user.City = *req.City
	}
	if req.State != nil {
		user.State = *req.State
	}
	if req.ZipCode != nil {
		user.ZipCode = *req.ZipCode
	}

	if err := s.users.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user updated by admin", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// Delete refuses the admin's own account and any account with order
// history.
func (s *UserServiceImpl) Delete(actorID, id string) error {
	if actorID == id {
		return apperrors.ErrCannotDeleteSelf
	}

	if _, err := s.Get(id); err != nil {
		return err
	}

	orders, err := s.users.CountOrders(id)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if orders > 0 {
		return apperrors.ErrUserHasOrders
	}

	if err := s.users.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("user deleted by admin", "user_id", id, "actor_id", actorID)
	return nil
}
