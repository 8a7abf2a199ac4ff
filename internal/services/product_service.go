package services

import (
	"fmt"
	"math"
	"strings"

	"tienda/internal/apperrors"
	"tienda/internal/models"
	"tienda/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// ProductService handles business logic related to the product catalog:
// validated creation, deletion, lookups and the filtered/sorted/paginated
// listing engine.
type ProductService struct {
	repo     repositories.ProductRepository
	sink     NotificationSink
	validate *validator.Validate
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, sink NotificationSink) *ProductService {
	return &ProductService{
		repo:     repo,
		sink:     sink,
		validate: validator.New(),
	}
}

// CreateProduct validates and stores a new product. Code and title must be
// unique across the catalog (exact, case-sensitive match). Emits a
// newProduct event on success, best-effort.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.validate.Struct(product); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return fmt.Errorf("failed to validate product: %w", err)
		}
		e := validationErrors[0]
		return apperrors.NewValidation(e.Field(), fmt.Sprintf("failed on the '%s' tag", e.Tag()))
	}

	if _, err := s.repo.GetByCode(product.Code); err == nil {
		return apperrors.NewDuplicate("code", product.Code)
	} else if !apperrors.IsNotFound(err) {
		return err
	}
	if _, err := s.repo.GetByTitle(product.Title); err == nil {
		return apperrors.NewDuplicate("title", product.Title)
	} else if !apperrors.IsNotFound(err) {
		return err
	}

	if err := s.repo.Create(product); err != nil {
		return err
	}

	emit(s.sink, "newProduct", product)
	return nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// DeleteProduct deletes a product by its ID and emits a productDeleted
// event. Existing carts referencing the product are left untouched.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	emit(s.sink, "productDeleted", id)
	return nil
}

// Categories returns the distinct category values in the catalog.
func (s *ProductService) Categories() ([]string, error) {
	return s.repo.DistinctCategories()
}

// ListProducts runs a filtered, sorted, paginated catalog query and builds
// the listing envelope, including navigation links that reproduce the query
// parameters with only the page number changed.
func (s *ProductService) ListProducts(q models.ListQuery) (*models.ProductPage, error) {
	if q.Limit <= 0 {
		return nil, apperrors.NewValidation("limit", "must be a positive integer")
	}
	if q.Page <= 0 {
		return nil, apperrors.NewValidation("page", "must be a positive integer")
	}

	filter := models.ProductFilter{
		Category: strings.ToLower(q.Category),
		Title:    q.Query,
		Stock:    q.Stock,
	}

	total, err := s.repo.Count(filter)
	if err != nil {
		return nil, err
	}

	skip := (q.Page - 1) * q.Limit
	products, err := s.repo.Query(filter, q.Sort, skip, q.Limit)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}

	totalPages := int(math.Ceil(float64(total) / float64(q.Limit)))

	page := &models.ProductPage{
		Status:      "success",
		Payload:     products,
		TotalPages:  totalPages,
		Page:        q.Page,
		HasPrevPage: q.Page > 1,
		HasNextPage: q.Page < totalPages,
	}
	if page.HasPrevPage {
		prev := q.Page - 1
		link := listLink(q, prev)
		page.PrevPage = &prev
		page.PrevLink = &link
	}
	if page.HasNextPage {
		next := q.Page + 1
		link := listLink(q, next)
		page.NextPage = &next
		page.NextLink = &link
	}
	return page, nil
}

// listLink rebuilds the listing URL with every parameter preserved and only
// the page number changed. Values are interpolated without URL escaping,
// matching the links the original feed always produced; filter values are
// plain words, so escaping would only change the output for inputs that
// never matched anything anyway.
func listLink(q models.ListQuery, page int) string {
	return fmt.Sprintf("/api/v1/products?limit=%d&page=%d&sort=%s&query=%s&category=%s&stock=%s",
		q.Limit, page, q.Sort, q.Query, q.Category, q.Stock)
}
