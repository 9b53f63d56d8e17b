package users

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sunar87/foodgram/foodgram/config"
	"github.com/sunar87/foodgram/internal/domain"
	"github.com/sunar87/foodgram/internal/gateways/database/models"
	"github.com/sunar87/foodgram/internal/gateways/storage"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Register(ctx context.Context, cmd RegisterCommand) (*domain.UserView, error)
	Get(ctx context.Context, viewerID, id int64) (*domain.UserView, error)
	List(ctx context.Context, viewerID int64, page domain.Page) (domain.PageResult[domain.UserView], error)
	Me(ctx context.Context, user *models.User) *domain.UserView
	SetPassword(ctx context.Context, user *models.User, cmd SetPasswordCommand) error
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, user *models.User) error
	SetAvatar(ctx context.Context, user *models.User, dataURL string) (string, error)
	DeleteAvatar(ctx context.Context, user *models.User) error
	Subscribe(ctx context.Context, user *models.User, authorID int64, recipesLimit int) (*SubscriptionView, error)
	Unsubscribe(ctx context.Context, user *models.User, authorID int64) error
	Subscriptions(ctx context.Context, user *models.User, page domain.Page, recipesLimit int) (domain.PageResult[*SubscriptionView], error)
}

type service struct {
	repository Repository
	images     ImageStore
	tokens     *TokenIssuer
	hashCost   int
}

func NewService(repository Repository, images ImageStore, tokens *TokenIssuer) *service {
	return &service{
		repository: repository,
		images:     images,
		tokens:     tokens,
		hashCost:   bcrypt.DefaultCost,
	}
}

func (s *service) Register(ctx context.Context, cmd RegisterCommand) (*domain.UserView, error) {
	if err := cmd.Validate().Err(); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(cmd.Email)
	username := strings.TrimSpace(cmd.Username)
	emailTaken, usernameTaken, err := s.repository.EmailOrUsernameTaken(ctx, email, username)
	if err != nil {
		return nil, err
	}
	var errs domain.ValidationErrors
	if emailTaken {
		errs.Add(domain.CodeTaken, "email", "a user with this email already exists")
	}
	if usernameTaken {
		errs.Add(domain.CodeTaken, "username", "a user with this username already exists")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		Username:     username,
		FirstName:    strings.TrimSpace(cmd.FirstName),
		LastName:     strings.TrimSpace(cmd.LastName),
		PasswordHash: string(hash),
	}
	if err := s.repository.Create(ctx, user); err != nil {
		return nil, err
	}

	slog.Info("User registered",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username),
	)
	view := domain.NewUserView(user, false, s.images.URL)
	return &view, nil
}

func (s *service) Get(ctx context.Context, viewerID, id int64) (*domain.UserView, error) {
	user, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	subscribed, err := s.subscribed(ctx, viewerID, []int64{id})
	if err != nil {
		return nil, err
	}
	view := domain.NewUserView(user, subscribed[id], s.images.URL)
	return &view, nil
}

func (s *service) List(ctx context.Context, viewerID int64, page domain.Page) (domain.PageResult[domain.UserView], error) {
	list, total, err := s.repository.List(ctx, page.Offset(), page.Limit)
	if err != nil {
		return domain.PageResult[domain.UserView]{}, fmt.Errorf("failed to list users: %w", err)
	}

	subscribed, err := s.subscribed(ctx, viewerID, userIDs(list))
	if err != nil {
		return domain.PageResult[domain.UserView]{}, err
	}

	views := make([]domain.UserView, len(list))
	for i, u := range list {
		views[i] = domain.NewUserView(u, subscribed[u.ID], s.images.URL)
	}
	return domain.PageResult[domain.UserView]{Count: total, Items: views}, nil
}

func (s *service) Me(_ context.Context, user *models.User) *domain.UserView {
	view := domain.NewUserView(user, false, s.images.URL)
	return &view
}

func (s *service) SetPassword(ctx context.Context, user *models.User, cmd SetPasswordCommand) error {
	if err := cmd.Validate().Err(); err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(cmd.CurrentPassword)) != nil {
		return domain.ValidationErrors{{
			Code:    domain.CodeWrongPassword,
			Field:   "current_password",
			Message: "current password is incorrect",
		}}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.NewPassword), s.hashCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.repository.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return err
	}
	slog.Info("Password changed", slog.Int64("user_id", user.ID))
	return nil
}

// Login checks the credentials and issues an access token. Unknown emails
// and wrong passwords fail identically.
func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	invalid := domain.ValidationErrors{{
		Code:    domain.CodeInvalidCredentials,
		Field:   "non_field_errors",
		Message: "unable to log in with provided credentials",
	}}

	user, err := s.repository.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if domain.IsNotFound(err) {
			return "", invalid
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", invalid
	}

	token, err := s.tokens.Issue(user.ID, user.TokenVersion)
	if err != nil {
		return "", err
	}
	slog.Debug("Token issued", slog.Int64("user_id", user.ID))
	return token, nil
}

func (s *service) Authenticate(ctx context.Context, token string) (*models.User, error) {
	id, version, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}
	user, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, &domain.UnauthorizedError{Reason: "user no longer exists"}
		}
		return nil, err
	}
	if version != user.TokenVersion {
		return nil, &domain.UnauthorizedError{Reason: "token has been revoked"}
	}
	return user, nil
}

// Logout invalidates every token issued to the user so far.
func (s *service) Logout(ctx context.Context, user *models.User) error {
	if err := s.repository.RevokeTokens(ctx, user.ID); err != nil {
		return err
	}
	slog.Info("Tokens revoked", slog.Int64("user_id", user.ID))
	return nil
}

// SetAvatar stores the uploaded picture and returns its public URL. The
// previous avatar is removed once the new one is saved.
func (s *service) SetAvatar(ctx context.Context, user *models.User, dataURL string) (string, error) {
	if strings.TrimSpace(dataURL) == "" {
		return "", domain.ValidationErrors{{Code: domain.CodeRequired, Field: "avatar", Message: "this field is required"}}
	}

	ref, err := s.images.Save(ctx, config.AvatarImagePrefix, dataURL)
	if err != nil {
		if storage.IsInvalidImage(err) {
			return "", domain.ValidationErrors{{Code: domain.CodeInvalidFormat, Field: "avatar", Message: err.Error()}}
		}
		return "", fmt.Errorf("failed to store avatar: %w", err)
	}
	if err := s.repository.UpdateAvatar(ctx, user.ID, ref); err != nil {
		s.discardImage(ctx, ref)
		return "", err
	}
	s.discardImage(ctx, user.Avatar)
	user.Avatar = ref
	return s.images.URL(ref), nil
}

func (s *service) DeleteAvatar(ctx context.Context, user *models.User) error {
	if user.Avatar == "" {
		return nil
	}
	if err := s.repository.UpdateAvatar(ctx, user.ID, ""); err != nil {
		return err
	}
	s.discardImage(ctx, user.Avatar)
	user.Avatar = ""
	return nil
}

func (s *service) Subscribe(ctx context.Context, user *models.User, authorID int64, recipesLimit int) (*SubscriptionView, error) {
	if user.ID == authorID {
		return nil, domain.ValidationErrors{{
			Code:    domain.CodeSelfSubscription,
			Field:   "author",
			Message: "you cannot subscribe to yourself",
		}}
	}

	author, err := s.repository.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	created, err := s.repository.Subscribe(ctx, user.ID, authorID)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, &domain.ConflictError{Entity: "subscription", Field: "author", Value: authorID}
	}

	slog.Info("Subscribed",
		slog.Int64("user_id", user.ID),
		slog.Int64("author_id", authorID),
	)
	views, err := s.subscriptionViews(ctx, []*models.User{author}, recipesLimit)
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (s *service) Unsubscribe(ctx context.Context, user *models.User, authorID int64) error {
	if _, err := s.repository.GetByID(ctx, authorID); err != nil {
		return err
	}
	removed, err := s.repository.Unsubscribe(ctx, user.ID, authorID)
	if err != nil {
		return err
	}
	if !removed {
		return &domain.NotFoundError{Entity: "subscription", ID: authorID}
	}
	return nil
}

func (s *service) Subscriptions(ctx context.Context, user *models.User, page domain.Page, recipesLimit int) (domain.PageResult[*SubscriptionView], error) {
	authors, total, err := s.repository.Subscriptions(ctx, user.ID, page.Offset(), page.Limit)
	if err != nil {
		return domain.PageResult[*SubscriptionView]{}, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	views, err := s.subscriptionViews(ctx, authors, recipesLimit)
	if err != nil {
		return domain.PageResult[*SubscriptionView]{}, err
	}
	return domain.PageResult[*SubscriptionView]{Count: total, Items: views}, nil
}

// subscriptionViews builds views for authors the caller is subscribed to,
// so is_subscribed is always true.
func (s *service) subscriptionViews(ctx context.Context, authors []*models.User, recipesLimit int) ([]*SubscriptionView, error) {
	ids := userIDs(authors)
	recipes, err := s.repository.RecipesByAuthor(ctx, ids, recipesLimit)
	if err != nil {
		return nil, err
	}
	counts, err := s.repository.RecipeCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]*SubscriptionView, len(authors))
	for i, author := range authors {
		shorts := make([]domain.RecipeShort, 0, len(recipes[author.ID]))
		for _, r := range recipes[author.ID] {
			shorts = append(shorts, domain.NewRecipeShort(r, s.images.URL))
		}
		views[i] = &SubscriptionView{
			UserView:     domain.NewUserView(author, true, s.images.URL),
			Recipes:      shorts,
			RecipesCount: counts[author.ID],
		}
	}
	return views, nil
}

func (s *service) subscribed(ctx context.Context, viewerID int64, ids []int64) (map[int64]bool, error) {
	if viewerID == 0 || len(ids) == 0 {
		return map[int64]bool{}, nil
	}
	return s.repository.SubscribedAuthors(ctx, viewerID, ids)
}

func (s *service) discardImage(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	if err := s.images.Delete(ctx, ref); err != nil {
		slog.Warn("Failed to delete avatar",
			slog.String("ref", ref),
			slog.Any("error", err),
		)
	}
}

func userIDs(list []*models.User) []int64 {
	ids := make([]int64, len(list))
	for i, u := range list {
		ids[i] = u.ID
	}
	return ids
}
