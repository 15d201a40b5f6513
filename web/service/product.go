package service

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/re912/cafe-managenent/config"
	"github.com/re912/cafe-managenent/database"
	"github.com/re912/cafe-managenent/database/model"
	"github.com/re912/cafe-managenent/util/common"
)

// ProductService manages the product catalog and its image uploads.
type ProductService struct {
	upload config.UploadConfig
}

func NewProductService(upload config.UploadConfig) *ProductService {
	return &ProductService{upload: upload}
}

func (s *ProductService) AddProduct(product *model.Product) error {
	db := database.GetDB()
	return db.Create(product).Error
}

// UpdateProduct overwrites every field except the image reference.
// A missing id updates zero rows and is not an error.
func (s *ProductService) UpdateProduct(id int, name string, price float64, category string, description string) error {
	db := database.GetDB()
	return db.Model(model.Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":        name,
			"price":       price,
			"category":    category,
			"description": description,
		}).
		Error
}

// DeleteProduct removes the product. Stock log rows referencing it are
// left untouched.
func (s *ProductService) DeleteProduct(id int) error {
	db := database.GetDB()
	return db.Delete(&model.Product{}, id).Error
}

func (s *ProductService) GetProduct(id int) (*model.Product, error) {
	db := database.GetDB()
	product := &model.Product{}
	err := db.First(product, id).Error
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetProducts() ([]model.Product, error) {
	db := database.GetDB()
	var products []model.Product
	err := db.Find(&products).Error
	return products, err
}

// SaveImage persists an uploaded image and returns the stored path.
// A file whose extension is not in the allowed set yields "" with no
// error, matching the silent-rejection contract of the catalog. Same
// sanitized filenames overwrite each other.
func (s *ProductService) SaveImage(file *multipart.FileHeader) (string, error) {
	if file == nil || file.Filename == "" {
		return "", nil
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), ".")
	if !s.upload.Allows(ext) {
		return "", nil
	}
	if s.upload.MaxUploadBytes > 0 && file.Size > s.upload.MaxUploadBytes {
		return "", common.NewErrorf("image %s exceeds upload limit of %d bytes", file.Filename, s.upload.MaxUploadBytes)
	}

	if err := os.MkdirAll(s.upload.Folder, 0o750); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	storedPath := filepath.Join(s.upload.Folder, common.SanitizeFilename(file.Filename))
	dst, err := os.Create(storedPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return storedPath, nil
}
