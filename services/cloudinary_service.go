package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld}, nil
}

// UploadImage uploads a single product image and returns the secure URL
func (s *CloudinaryService) UploadImage(ctx context.Context, file multipart.File, filename string, folder string) (string, error) {
	// The cloudinary SDK wants pointer booleans here
	unique := true
	overwrite := false
	uploadParams := uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}

	if filename != "" {
		uploadParams.PublicID = filename
	}

	result, err := s.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	if result.SecureURL == "" {
		return "", fmt.Errorf("upload successful but no URL returned")
	}

	return result.SecureURL, nil
}

// UploadMultipleImages uploads image files for a product and returns their URLs
func (s *CloudinaryService) UploadMultipleImages(ctx context.Context, files []*multipart.FileHeader, folder string) ([]string, error) {
	var urls []string

	for i, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open file %s: %w", fileHeader.Filename, err)
		}
		defer file.Close()

		filename := fmt.Sprintf("%s_%d", fileHeader.Filename, i)
		url, err := s.UploadImage(ctx, file, filename, folder)
		if err != nil {
			return nil, err
		}

		urls = append(urls, url)
	}

	return urls, nil
}

// DeleteImage deletes an image from Cloudinary using its public ID
func (s *CloudinaryService) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	return err
}

// DeleteProductImages removes every asset stored under a product's folder.
// Cloudinary auto-removes empty folders, but we try to delete the folder
// structure anyway and ignore errors.
func (s *CloudinaryService) DeleteProductImages(ctx context.Context, folderPath string) error {
	_, err := s.cld.Admin.DeleteAssetsByPrefix(ctx, admin.DeleteAssetsByPrefixParams{
		Prefix: api.CldAPIArray{folderPath},
	})
	if err != nil {
		return fmt.Errorf("failed to delete assets in folder %s: %w", folderPath, err)
	}

	s.cld.Admin.DeleteFolder(ctx, admin.DeleteFolderParams{
		Folder: folderPath,
	})

	return nil
}
