package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// authResponse keeps the {error, user} shape clients already parse; error is always null on success.
type authResponse struct {
	Error   *string       `json:"error"`
	User    *userResponse `json:"user"`
	Message string        `json:"message,omitempty"`
}

// --- Catalog ---

type productRequest struct {
	Name        string  `json:"name"               validate:"required,max=200"`
	ImageURL    string  `json:"imageUrl"`
	Description string  `json:"productDescription"`
	Count       int     `json:"count"              validate:"gte=0"`
	Price       float64 `json:"price"              validate:"gte=0"`
	Category    string  `json:"category"           validate:"omitempty,mongodb"`
}

// productPatchRequest only touches the fields present in the body.
type productPatchRequest struct {
	Name        *string  `json:"name"               validate:"omitnil,min=1,max=200"`
	ImageURL    *string  `json:"imageUrl"`
	Description *string  `json:"productDescription"`
	Count       *int     `json:"count"              validate:"omitnil,gte=0"`
	Price       *float64 `json:"price"              validate:"omitnil,gte=0"`
	Category    *string  `json:"category"`
}

type listProductsQuery struct {
	Search string `query:"search"`
	Limit  int    `query:"limit"`
	Page   int    `query:"page"`
}

type productResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	ImageURL           string  `json:"imageUrl"`
	ProductDescription string  `json:"productDescription"`
	Count              int     `json:"count"`
	Price              float64 `json:"price"`
	Category           string  `json:"category"`
}

// productListResponse: data carries the lastPage flag.
type productListResponse struct {
	Data     bool              `json:"data"`
	Products []productResponse `json:"products"`
}

type productEnvelope struct {
	Data productResponse `json:"data"`
}

type categoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type categoryListResponse struct {
	Data []categoryResponse `json:"data"`
}

type messageResponse struct {
	Error   *string `json:"error"`
	Message string  `json:"message"`
}

// --- Cart ---

type cartItemRequest struct {
	ProductID string `json:"productId" validate:"required,mongodb"`
	Quantity  int    `json:"quantity"  validate:"required,min=1,max=10000"`
}

type saveCartRequest struct {
	Items []cartItemRequest `json:"items" validate:"max=200,dive"`
}

type cartLineResponse struct {
	Product  productResponse `json:"product"`
	Quantity int             `json:"quantity"`
}

type cartResponse struct {
	Items []cartLineResponse `json:"items"`
	Sum   float64            `json:"sum"`
}
