package handler

import (
	"strings"
	"time"

	"gamestore/internal/domain/entity"

	"github.com/google/uuid"
)

// View types shape the JSON bodies returned to clients. Credentials, reset
// tokens and the card CVV never appear here.

type userView struct {
	ID          uuid.UUID   `json:"id"`
	Email       string      `json:"email"`
	Username    string      `json:"username"`
	FirstName   string      `json:"firstName,omitempty"`
	LastName    string      `json:"lastName,omitempty"`
	DateOfBirth *time.Time  `json:"dateOfBirth,omitempty"`
	PhoneNumber string      `json:"phoneNumber,omitempty"`
	Card        *cardView   `json:"card,omitempty"`
	Wishlist    []uuid.UUID `json:"wishlist"`
	Library     []uuid.UUID `json:"library"`
	Comments    []uuid.UUID `json:"comments"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type cardView struct {
	Name       string `json:"name,omitempty"`
	Number     string `json:"number"` // Masked to the last four digits.
	Expiration string `json:"expiration"`
}

type companyView struct {
	ID          uuid.UUID   `json:"id"`
	Email       string      `json:"email"`
	CompanyName string      `json:"companyName"`
	Country     string      `json:"country,omitempty"`
	City        string      `json:"city,omitempty"`
	Street      string      `json:"street,omitempty"`
	Address     string      `json:"address,omitempty"`
	PhoneNumber string      `json:"phoneNumber,omitempty"`
	Games       []uuid.UUID `json:"games"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type requirementsView struct {
	System    string `json:"system,omitempty"`
	Processor string `json:"processor,omitempty"`
	Memory    string `json:"memory,omitempty"`
	Graphics  string `json:"graphics,omitempty"`
	DirectX   string `json:"directX,omitempty"`
	Storage   string `json:"storage,omitempty"`
}

type gameView struct {
	ID                      uuid.UUID        `json:"id"`
	Name                    string           `json:"name"`
	Category                string           `json:"category"`
	Description             string           `json:"description"`
	MinimumRequirements     requirementsView `json:"minimumRequirements"`
	RecommendedRequirements requirementsView `json:"recommendedRequirements"`
	Price                   float64          `json:"price"`
	CompanyID               uuid.UUID        `json:"companyId"`
	IsPublished             bool             `json:"isPublished"`
	Views                   int64            `json:"views"`
	AverageRating           float64          `json:"averageRating"`
	Purchases               int64            `json:"purchases"`
	WishlistCount           int64            `json:"wishlistCount"`
	Comments                []uuid.UUID      `json:"comments"`
	CreatedAt               time.Time        `json:"createdAt"`
	UpdatedAt               time.Time        `json:"updatedAt"`
}

type commentView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	GameID    uuid.UUID `json:"gameId"`
	Text      string    `json:"comment"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

type purchaseView struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	GameID        uuid.UUID `json:"gameId"`
	Amount        float64   `json:"amount"`
	PurchaseDate  time.Time `json:"purchaseDate"`
	PaymentStatus string    `json:"paymentStatus"`
	PaymentMethod string    `json:"paymentMethod"`
}

func newUserView(user *entity.User) *userView {
	if user == nil {
		return nil
	}

	return &userView{
		ID:          user.ID,
		Email:       user.Email,
		Username:    user.Username,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		DateOfBirth: user.DateOfBirth,
		PhoneNumber: user.PhoneNumber,
		Card:        newCardView(user.Card),
		Wishlist:    emptyIfNil(user.Wishlist),
		Library:     emptyIfNil(user.Library),
		Comments:    emptyIfNil(user.Comments),
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

func newUserViews(users []*entity.User) []*userView {
	views := make([]*userView, 0, len(users))
	for _, user := range users {
		views = append(views, newUserView(user))
	}

	return views
}

func newCardView(card *entity.PaymentCard) *cardView {
	if card == nil {
		return nil
	}

	return &cardView{
		Name:       card.Name,
		Number:     maskCardNumber(card.Number),
		Expiration: card.Expiration,
	}
}

// maskCardNumber keeps only the last four digits visible.
func maskCardNumber(number string) string {
	if len(number) <= 4 {
		return number
	}

	return strings.Repeat("*", len(number)-4) + number[len(number)-4:]
}

func newCompanyView(company *entity.Company) *companyView {
	if company == nil {
		return nil
	}

	return &companyView{
		ID:          company.ID,
		Email:       company.Email,
		CompanyName: company.CompanyName,
		Country:     company.Country,
		City:        company.City,
		Street:      company.Street,
		Address:     company.Address,
		PhoneNumber: company.PhoneNumber,
		Games:       emptyIfNil(company.Games),
		CreatedAt:   company.CreatedAt,
		UpdatedAt:   company.UpdatedAt,
	}
}

func newCompanyViews(companies []*entity.Company) []*companyView {
	views := make([]*companyView, 0, len(companies))
	for _, company := range companies {
		views = append(views, newCompanyView(company))
	}

	return views
}

func newGameView(game *entity.Game) *gameView {
	if game == nil {
		return nil
	}

	return &gameView{
		ID:                      game.ID,
		Name:                    game.DisplayName,
		Category:                game.Category,
		Description:             game.Description,
		MinimumRequirements:     newRequirementsView(game.MinimumRequirements),
		RecommendedRequirements: newRequirementsView(game.RecommendedRequirements),
		Price:                   game.Price,
		CompanyID:               game.CompanyID,
		IsPublished:             game.IsPublished,
		Views:                   game.Views,
		AverageRating:           game.AverageRating,
		Purchases:               game.Purchases,
		WishlistCount:           game.WishlistCount,
		Comments:                emptyIfNil(game.Comments),
		CreatedAt:               game.CreatedAt,
		UpdatedAt:               game.UpdatedAt,
	}
}

func newGameViews(games []*entity.Game) []*gameView {
	views := make([]*gameView, 0, len(games))
	for _, game := range games {
		views = append(views, newGameView(game))
	}

	return views
}

func newRequirementsView(req entity.Requirements) requirementsView {
	return requirementsView{
		System:    req.System,
		Processor: req.Processor,
		Memory:    req.Memory,
		Graphics:  req.Graphics,
		DirectX:   req.DirectX,
		Storage:   req.Storage,
	}
}

func newCommentView(comment *entity.Comment) *commentView {
	if comment == nil {
		return nil
	}

	return &commentView{
		ID:        comment.ID,
		UserID:    comment.UserID,
		GameID:    comment.GameID,
		Text:      comment.Text,
		Rating:    comment.Rating,
		CreatedAt: comment.CreatedAt,
	}
}

func newPurchaseView(purchase *entity.Purchase) *purchaseView {
	if purchase == nil {
		return nil
	}

	return &purchaseView{
		ID:            purchase.ID,
		UserID:        purchase.UserID,
		GameID:        purchase.GameID,
		Amount:        purchase.Amount,
		PurchaseDate:  purchase.PurchaseDate,
		PaymentStatus: string(purchase.PaymentStatus),
		PaymentMethod: string(purchase.PaymentMethod),
	}
}

func newPurchaseViews(purchases []*entity.Purchase) []*purchaseView {
	views := make([]*purchaseView, 0, len(purchases))
	for _, purchase := range purchases {
		views = append(views, newPurchaseView(purchase))
	}

	return views
}

func emptyIfNil(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}

	return ids
}
