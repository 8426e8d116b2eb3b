package logic

import (
	"errors"
	"fmt"
	"time"

	"github.com/blues/tfs/internal/logger"
	"github.com/blues/tfs/internal/mailer"
	"github.com/blues/tfs/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 认证链接有效期
const hospitalTokenTTL = 72 * time.Hour

// HospitalVerificationLogic 医院邮箱认证业务逻辑
type HospitalVerificationLogic struct {
	db         *gorm.DB
	sender     mailer.Sender
	verifyBase string
}

// NewHospitalVerificationLogic 创建医院认证业务逻辑
func NewHospitalVerificationLogic(db *gorm.DB, sender mailer.Sender, verifyBase string) *HospitalVerificationLogic {
	return &HospitalVerificationLogic{
		db:         db,
		sender:     sender,
		verifyBase: verifyBase,
	}
}

// SendVerification 创建认证记录并向医院邮箱发送认证链接
func (l *HospitalVerificationLogic) SendVerification(campaignId int64, hospitalEmail string) error {
	if hospitalEmail == "" {
		return errors.New("医院邮箱不能为空")
	}

	// 检查活动是否存在
	var campaign model.CampaignModel
	if err := l.db.First(&campaign, campaignId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if campaign.IsVerified {
		return errors.New("活动已完成认证")
	}

	verification := model.HospitalVerificationModel{
		CampaignId:    campaignId,
		HospitalEmail: hospitalEmail,
		Token:         uuid.NewString(),
		ExpiresAt:     time.Now().Add(hospitalTokenTTL),
	}

	if err := l.db.Create(&verification).Error; err != nil {
		return err
	}

	verifyURL := fmt.Sprintf("%s/api/verify-hospital?token=%s", l.verifyBase, verification.Token)
	textBody := fmt.Sprintf("请点击以下链接完成活动 %s 的医院认证：\n%s\n链接72小时内有效。", campaign.Code, verifyURL)
	htmlBody := fmt.Sprintf(`<p>请点击以下链接完成活动 <b>%s</b> 的医院认证：</p><p><a href="%s">%s</a></p><p>链接72小时内有效。</p>`,
		campaign.Code, verifyURL, verifyURL)

	if err := l.sender.Send(hospitalEmail, "TrueFund 医院认证", textBody, htmlBody); err != nil {
		logger.Error("发送认证邮件失败: %v", err)
		return fmt.Errorf("发送认证邮件失败: %w", err)
	}

	return nil
}

// VerifyToken 校验认证令牌并将对应活动标记为已认证
func (l *HospitalVerificationLogic) VerifyToken(token string) (*model.CampaignModel, error) {
	if token == "" {
		return nil, errors.New("缺少认证令牌")
	}

	var verification model.HospitalVerificationModel
	if err := l.db.Where("token = ?", token).First(&verification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if verification.Verified {
		return nil, errors.New("该认证链接已使用")
	}
	if time.Now().After(verification.ExpiresAt) {
		return nil, errors.New("认证链接已过期")
	}

	// 开始事务
	tx := l.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// 标记认证记录已使用
	if err := tx.Model(&verification).Update("verified", true).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	// 标记活动已认证
	if err := tx.Model(&model.CampaignModel{}).
		Where("id = ?", verification.CampaignId).
		Update("is_verified", true).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	// 提交事务
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	var campaign model.CampaignModel
	if err := l.db.First(&campaign, verification.CampaignId).Error; err != nil {
		return nil, err
	}

	return &campaign, nil
}
