package upload

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/config"
)

// Uploader 头像对象存储接口
type Uploader interface {
	UploadAvatar(ctx context.Context, userID string, file io.Reader) (string, error)
}

// cloudinaryUploader Uploader 的 Cloudinary 实现
type cloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
	logger *zap.Logger
}

// NewCloudinaryUploader 根据配置创建 Cloudinary 上传器
func NewCloudinaryUploader(cfg *config.CloudinaryConfig, logger *zap.Logger) (Uploader, error) {
	cld, err := cloudinary.NewFromURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("初始化 Cloudinary 失败: %w", err)
	}
	return &cloudinaryUploader{cld: cld, folder: cfg.Folder, logger: logger}, nil
}

// UploadAvatar 上传头像并返回 HTTPS 访问地址
// 同一用户重复上传会覆盖旧头像（PublicID 固定为 userID）
func (u *cloudinaryUploader) UploadAvatar(ctx context.Context, userID string, file io.Reader) (string, error) {
	overwrite := true
	uniqueFilename := false

	result, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         u.folder,
		PublicID:       userID,
		Overwrite:      &overwrite,
		UniqueFilename: &uniqueFilename,
		ResourceType:   "image",
	})
	if err != nil {
		return "", fmt.Errorf("上传头像失败: %w", err)
	}

	u.logger.Info("头像上传成功",
		zap.String("user_id", userID),
		zap.String("url", result.SecureURL),
	)

	return result.SecureURL, nil
}
