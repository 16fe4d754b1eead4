package handler

import (
	"github.com/99minutos/shop-api/internal/core/domain"
	"github.com/99minutos/shop-api/internal/core/ports"
)

// --- Request → Service input ---

func toProductInput(r productRequest) ports.ProductInput {
	return ports.ProductInput{
		Name:        r.Name,
		ImageURL:    r.ImageURL,
		Description: r.Description,
		Count:       r.Count,
		Price:       r.Price,
		CategoryID:  r.Category,
	}
}

func toProductUpdateInput(r productPatchRequest) ports.ProductUpdateInput {
	return ports.ProductUpdateInput{
		Name:        r.Name,
		ImageURL:    r.ImageURL,
		Description: r.Description,
		Count:       r.Count,
		Price:       r.Price,
		CategoryID:  r.Category,
	}
}

func toCartItemInputs(r saveCartRequest) []ports.CartItemInput {
	out := make([]ports.CartItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, ports.CartItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return out
}

// --- Domain → HTTP response ---

// toUserResponse drops the password hash.
func toUserResponse(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	return &userResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		RegisteredAt: u.CreatedAt.UTC(),
	}
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:                 p.ID,
		Name:               p.Name,
		ImageURL:           p.ImageURL,
		ProductDescription: p.Description,
		Count:              p.Count,
		Price:              p.Price,
		Category:           p.CategoryID,
	}
}

func toProductResponses(ps []*domain.Product) []productResponse {
	out := make([]productResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProductResponse(p))
	}
	return out
}

func toCategoryResponses(cs []domain.Category) []categoryResponse {
	out := make([]categoryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, categoryResponse{ID: c.ID, Name: c.Name})
	}
	return out
}

func toCartResponse(v *domain.CartView) cartResponse {
	resp := cartResponse{Items: make([]cartLineResponse, 0, len(v.Lines)), Sum: v.Sum}
	for i := range v.Lines {
		resp.Items = append(resp.Items, cartLineResponse{
			Product:  toProductResponse(&v.Lines[i].Product),
			Quantity: v.Lines[i].Quantity,
		})
	}
	return resp
}
