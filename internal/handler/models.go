package handler

import (
	"time"

	"github.com/blues/tfs/internal/model"
)

// 分页信息结构
type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"pageSize"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"totalPage"`
}

// NewPagination 构建分页信息，pageSize 最小按1计算
func NewPagination(page, pageSize int, total int64) Pagination {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPage := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		totalPage++
	}
	return Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	}
}

// 活动相关响应模型

// CampaignResponse 活动响应模型
type CampaignResponse struct {
	ID              int64     `json:"id"`
	Code            string    `json:"code"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ImageURL        string    `json:"imageUrl"`
	Category        string    `json:"category"`
	TargetAmount    int64     `json:"targetAmount"`
	CollectedAmount int64     `json:"collectedAmount"`
	Status          string    `json:"status"`
	IsVerified      bool      `json:"isVerified"`
	CreatorId       int64     `json:"creatorId"`
	CreatorName     string    `json:"creatorName"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ToCampaignResponse 将数据库模型转换为响应模型
func ToCampaignResponse(campaign *model.CampaignModel) CampaignResponse {
	return CampaignResponse{
		ID:              campaign.Id,
		Code:            campaign.Code,
		Title:           campaign.Title,
		Description:     campaign.Description,
		ImageURL:        campaign.ImageURL,
		Category:        campaign.Category,
		TargetAmount:    campaign.TargetAmount,
		CollectedAmount: campaign.CollectedAmount,
		Status:          string(campaign.Status),
		IsVerified:      campaign.IsVerified,
		CreatorId:       campaign.CreatorId,
		CreatorName:     campaign.CreatorName,
		StartTime:       campaign.StartTime,
		EndTime:         campaign.EndTime,
		CreatedAt:       campaign.CreatedAt,
		UpdatedAt:       campaign.UpdatedAt,
	}
}

// ToCampaignResponses 批量转换
func ToCampaignResponses(campaigns []model.CampaignModel) []CampaignResponse {
	responses := make([]CampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		responses = append(responses, ToCampaignResponse(&campaigns[i]))
	}
	return responses
}

// 捐赠相关响应模型

// DonationResponse 捐赠记录响应模型
type DonationResponse struct {
	ID         int64     `json:"id"`
	CampaignId int64     `json:"campaignId"`
	Amount     int64     `json:"amount"`
	Tip        int64     `json:"tip"`
	DonorId    int64     `json:"donorId,omitempty"`
	DonorName  string    `json:"donorName"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToDonationResponse 将数据库模型转换为响应模型
func ToDonationResponse(donation *model.DonationModel) DonationResponse {
	name := donation.DonorName
	if name == "" {
		name = "匿名"
	}
	return DonationResponse{
		ID:         donation.Id,
		CampaignId: donation.CampaignId,
		Amount:     donation.Amount,
		Tip:        donation.Tip,
		DonorId:    donation.DonorId,
		DonorName:  name,
		CreatedAt:  donation.CreatedAt,
	}
}

// ToDonationResponses 批量转换
func ToDonationResponses(donations []model.DonationModel) []DonationResponse {
	responses := make([]DonationResponse, 0, len(donations))
	for i := range donations {
		responses = append(responses, ToDonationResponse(&donations[i]))
	}
	return responses
}

// 请求模型

// CreateCampaignRequest 创建活动请求
type CreateCampaignRequest struct {
	Title        string    `json:"title" binding:"required"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	Category     string    `json:"category"`
	TargetAmount int64     `json:"target_amount" binding:"required,min=1"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	EndTime      time.Time `json:"end_time" binding:"required"`
}

// CreateDonationRequest 创建捐赠请求
type CreateDonationRequest struct {
	CampaignId int64  `json:"campaign_id" binding:"required"`
	Amount     int64  `json:"amount" binding:"required,min=1"`
	Tip        int64  `json:"tip" binding:"min=0"`
	DonorName  string `json:"donor_name"`
}

// CreateReviewRequest 创建评价请求
type CreateReviewRequest struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// CreateTicketRequest 创建工单请求
type CreateTicketRequest struct {
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// UpdateTicketRequest 更新工单请求（管理员）
type UpdateTicketRequest struct {
	Status     *string `json:"status"`
	AdminReply *string `json:"admin_reply"`
}

// CreateNgoVerificationRequest 提交NGO认证申请请求
type CreateNgoVerificationRequest struct {
	OrganizationName string `json:"organization_name" binding:"required"`
	RegistrationNo   string `json:"registration_no"`
	ContactEmail     string `json:"contact_email"`
	DocumentURL      string `json:"document_url"`
}

// ReviewNgoVerificationRequest 审核NGO认证申请请求（管理员）
type ReviewNgoVerificationRequest struct {
	Approve bool   `json:"approve"`
	Note    string `json:"note"`
}

// SendHospitalVerificationRequest 发送医院认证邮件请求
type SendHospitalVerificationRequest struct {
	CampaignId    int64  `json:"campaign_id" binding:"required"`
	HospitalEmail string `json:"hospital_email" binding:"required,email"`
}
