package api

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/saad710/shop-api/internal/service"
	"github.com/saad710/shop-api/internal/upload"
)

type ProductHandler struct {
	productService service.ProductService
	uploads        *upload.Saver
}

func NewProductHandler(productService service.ProductService, uploads *upload.Saver) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		uploads:        uploads,
	}
}

// Price arrives as a multipart form field, so it is validated as a numeric
// string and parsed after the validation stage.
type ProductRequest struct {
	Title      string   `form:"title" json:"title" validate:"required"`
	Desc       string   `form:"desc" json:"desc" validate:"required"`
	Price      string   `form:"price" json:"price" validate:"required,numeric"`
	Categories []string `form:"categories" json:"categories" validate:"required,min=1,dive,required"`
	Size       *string  `form:"size" json:"size"`
	Color      *string  `form:"color" json:"color"`
}

func (r *ProductRequest) parse() (price float64, categories []uuid.UUID, errs []FieldError) {
	price, err := strconv.ParseFloat(r.Price, 64)
	if err != nil || price < 0 {
		errs = append(errs, FieldError{Field: "price", Message: "Price must be a non-negative number."})
	}

	for _, raw := range r.Categories {
		id, err := uuid.Parse(raw)
		if err != nil {
			errs = append(errs, FieldError{Field: "categories", Message: fmt.Sprintf("%q is not a valid category id.", raw)})
			continue
		}
		categories = append(categories, id)
	}

	return price, categories, errs
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	req := Body[ProductRequest](c)

	price, categories, errs := req.parse()
	if len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": errs})
	}

	files, err := productImages(c)
	if err != nil || len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No images were uploaded."})
	}
	if len(files) > upload.MaxProductImages {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("A maximum of %d images are allowed.", upload.MaxProductImages),
		})
	}

	images, err := h.uploads.SaveAll(files)
	if errors.Is(err, upload.ErrNotImage) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only image files are allowed."})
	}
	if err != nil {
		return respondInternal(c, err)
	}

	product, err := h.productService.Create(c.Context(), service.CreateProductInput{
		Title:       req.Title,
		Description: req.Desc,
		Price:       price,
		Size:        req.Size,
		Color:       req.Color,
		Categories:  categories,
		Images:      images,
	})
	if err != nil {
		return respondInternal(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	}

	req := Body[ProductRequest](c)

	price, categories, errs := req.parse()
	if len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": errs})
	}

	input := service.UpdateProductInput{
		Title:       req.Title,
		Description: req.Desc,
		Price:       price,
		Size:        req.Size,
		Color:       req.Color,
		Categories:  categories,
	}

	// New images are optional on update; the stored set is kept otherwise.
	if files, ferr := productImages(c); ferr == nil && len(files) > 0 {
		if len(files) > upload.MaxProductImages {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": fmt.Sprintf("A maximum of %d images are allowed.", upload.MaxProductImages),
			})
		}

		images, serr := h.uploads.SaveAll(files)
		if errors.Is(serr, upload.ErrNotImage) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only image files are allowed."})
		}
		if serr != nil {
			return respondInternal(c, serr)
		}
		input.Images = images
	}

	product, err := h.productService.Update(c.Context(), id, input)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		return respondInternal(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(product)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	}

	product, err := h.productService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		return respondInternal(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(product)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	}

	if err := h.productService.Delete(c.Context(), id); err != nil {
		return respondInternal(c, err)
	}

	return c.Status(fiber.StatusOK).JSON("successfully deleted")
}

func productImages(c *fiber.Ctx) ([]*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	return form.File["images"], nil
}
