package services

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/IlyaM70/RedMango-API/entity"
	"github.com/IlyaM70/RedMango-API/repository"
)

type MenuService struct {
	Repo      *repository.MenuRepository
	UploadDir string
	Log       *zap.SugaredLogger
}

func NewMenuService(repo *repository.MenuRepository, uploadDir string, log *zap.SugaredLogger) *MenuService {
	return &MenuService{Repo: repo, UploadDir: uploadDir, Log: log}
}

type MenuItemIn struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
	SpecialTag  string `form:"specialTag"`
	Category    string `form:"category"`
	Price       string `form:"price" binding:"required"`
}

func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.Repo.List()
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return item, err
}

func (s *MenuService) Create(in *MenuItemIn, file *multipart.FileHeader) (*entity.MenuItem, error) {
	price, err := parsePrice(in.Price)
	if err != nil {
		return nil, err
	}

	image, err := s.saveImage(file)
	if err != nil {
		return nil, err
	}

	item := &entity.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		SpecialTag:  in.SpecialTag,
		Category:    in.Category,
		Price:       price,
		Image:       image,
	}
	if err := s.Repo.Create(item); err != nil {
		s.Log.Errorw("create menu item", "err", err)
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Update(id uint, in *MenuItemIn, file *multipart.FileHeader) (*entity.MenuItem, error) {
	item, err := s.Repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	price, err := parsePrice(in.Price)
	if err != nil {
		return nil, err
	}

	item.Name = in.Name
	item.Description = in.Description
	item.SpecialTag = in.SpecialTag
	item.Category = in.Category
	item.Price = price

	if file != nil {
		s.removeImage(item.Image)
		image, err := s.saveImage(file)
		if err != nil {
			return nil, err
		}
		item.Image = image
	}

	if err := s.Repo.Save(item); err != nil {
		s.Log.Errorw("update menu item", "id", id, "err", err)
		return nil, err
	}
	return item, nil
}

// Delete removes the catalog row and its image file. Historical order lines
// keep their snapshots, so nothing cascades into orders.
func (s *MenuService) Delete(id uint) error {
	item, err := s.Repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	s.removeImage(item.Image)
	return s.Repo.Delete(item)
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		return decimal.Zero, errors.New("price must be a non-negative number")
	}
	return price, nil
}

func (s *MenuService) saveImage(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.UploadDir, 0o755); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(file.Filename)
	dst, err := os.Create(filepath.Join(s.UploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

func (s *MenuService) removeImage(image string) {
	if !strings.HasPrefix(image, "/uploads/") {
		return
	}
	name := strings.TrimPrefix(image, "/uploads/")
	if err := os.Remove(filepath.Join(s.UploadDir, name)); err != nil && !os.IsNotExist(err) {
		s.Log.Warnw("remove image", "image", image, "err", err)
	}
}
