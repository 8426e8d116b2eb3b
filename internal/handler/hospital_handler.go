package handler

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/blues/tfs/internal/logic"
	"github.com/gin-gonic/gin"
)

type HospitalHandler struct {
	hospitalLogic *logic.HospitalVerificationLogic
}

func NewHospitalHandler(hospitalLogic *logic.HospitalVerificationLogic) *HospitalHandler {
	return &HospitalHandler{
		hospitalLogic: hospitalLogic,
	}
}

// SendVerification 向医院邮箱发送认证链接
func (h *HospitalHandler) SendVerification(c *gin.Context) {
	var req SendHospitalVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 调用logic层发送认证邮件
	if err := h.hospitalLogic.SendVerification(req.CampaignId, req.HospitalEmail); err != nil {
		respondLogicError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "认证邮件已发送"})
}

// VerifyHospital 医院点击邮件链接完成认证，返回HTML页面
func (h *HospitalHandler) VerifyHospital(c *gin.Context) {
	token := c.Query("token")

	campaign, err := h.hospitalLogic.VerifyToken(token)
	if err != nil {
		c.Data(http.StatusBadRequest, "text/html; charset=utf-8", []byte(verifyFailurePage(err.Error())))
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(verifySuccessPage(campaign.Code, campaign.Title)))
}

// verifySuccessPage 认证成功页面，活动字段需转义后再插入HTML
func verifySuccessPage(code, title string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="zh">
<head><meta charset="utf-8"><title>认证成功 - TrueFund</title></head>
<body style="font-family: sans-serif; text-align: center; padding-top: 80px;">
  <h1 style="color: #2e7d32;">认证成功</h1>
  <p>活动 <b>%s</b>（%s）已通过医院认证。</p>
</body>
</html>`, template.HTMLEscapeString(code), template.HTMLEscapeString(title))
}

// verifyFailurePage 认证失败页面
func verifyFailurePage(reason string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="zh">
<head><meta charset="utf-8"><title>认证失败 - TrueFund</title></head>
<body style="font-family: sans-serif; text-align: center; padding-top: 80px;">
  <h1 style="color: #c62828;">认证失败</h1>
  <p>%s</p>
</body>
</html>`, template.HTMLEscapeString(reason))
}
