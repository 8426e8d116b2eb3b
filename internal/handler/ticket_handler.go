package handler

import (
	"net/http"
	"strconv"

	"github.com/blues/tfs/internal/logic"
	"github.com/blues/tfs/internal/middleware"
	"github.com/blues/tfs/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TicketHandler struct {
	ticketLogic *logic.TicketLogic
}

func NewTicketHandler(db *gorm.DB) *TicketHandler {
	return &TicketHandler{
		ticketLogic: logic.NewTicketLogic(db),
	}
}

// CreateTicket 创建工单
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)

	ticket := model.TicketModel{
		Subject: req.Subject,
		Message: req.Message,
	}

	// 调用logic层创建工单
	if err := h.ticketLogic.CreateTicket(&ticket, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "工单提交成功",
		"ticket":  ticket,
	})
}

// GetMyTickets 获取当前用户的工单
func (h *TicketHandler) GetMyTickets(c *gin.Context) {
	user := middleware.CurrentUser(c)

	// 调用logic层获取我的工单
	tickets, err := h.ticketLogic.GetMyTickets(user.Id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

// GetTickets 获取所有工单（管理员）
func (h *TicketHandler) GetTickets(c *gin.Context) {
	// 获取查询参数
	status := c.Query("status")
	page, pageSize := parsePagination(c, 20)

	// 调用logic层获取工单列表
	tickets, total, err := h.ticketLogic.GetTickets(status, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tickets":    tickets,
		"pagination": NewPagination(page, pageSize, total),
	})
}

// GetTicket 获取工单详情（管理员）
func (h *TicketHandler) GetTicket(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的工单ID"})
		return
	}

	// 调用logic层获取工单详情
	ticket, err := h.ticketLogic.GetTicket(id)
	if err != nil {
		respondLogicError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}

// UpdateTicket 更新工单状态与回复（管理员）
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的工单ID"})
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 更新字段
	updates := make(map[string]interface{})
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.AdminReply != nil {
		updates["admin_reply"] = *req.AdminReply
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "没有要更新的字段"})
		return
	}

	// 调用logic层更新工单
	ticket, err := h.ticketLogic.UpdateTicket(id, updates)
	if err != nil {
		respondLogicError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "工单更新成功",
		"ticket":  ticket,
	})
}
