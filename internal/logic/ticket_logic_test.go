package logic

import (
	"testing"

	"github.com/blues/tfs/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketLogic_CreateTicket(t *testing.T) {
	db := setupTestDB(t)
	ticketLogic := NewTicketLogic(db)
	user := createTestUser(t, db, "alice", model.UserRoleUser)

	t.Run("create ticket successfully", func(t *testing.T) {
		ticket := &model.TicketModel{Subject: "无法上传图片", Message: "上传活动图片时报错"}
		require.NoError(t, ticketLogic.CreateTicket(ticket, user))
		assert.Equal(t, model.TicketStatusOpen, ticket.Status)
		assert.Equal(t, user.Id, ticket.UserId)
	})

	t.Run("reject empty subject", func(t *testing.T) {
		ticket := &model.TicketModel{Message: "内容"}
		assert.Error(t, ticketLogic.CreateTicket(ticket, user))
	})

	t.Run("reject empty message", func(t *testing.T) {
		ticket := &model.TicketModel{Subject: "标题"}
		assert.Error(t, ticketLogic.CreateTicket(ticket, user))
	})
}

func TestTicketLogic_UpdateTicket(t *testing.T) {
	db := setupTestDB(t)
	ticketLogic := NewTicketLogic(db)
	user := createTestUser(t, db, "alice", model.UserRoleUser)

	ticket := &model.TicketModel{Subject: "捐赠未到账", Message: "昨天的捐赠没有显示"}
	require.NoError(t, ticketLogic.CreateTicket(ticket, user))

	t.Run("update status and reply", func(t *testing.T) {
		updated, err := ticketLogic.UpdateTicket(ticket.Id, map[string]interface{}{
			"status":      string(model.TicketStatusClosed),
			"admin_reply": "已确认到账",
		})
		require.NoError(t, err)

		var got model.TicketModel
		require.NoError(t, db.First(&got, updated.Id).Error)
		assert.Equal(t, model.TicketStatusClosed, got.Status)
		assert.Equal(t, "已确认到账", got.AdminReply)
	})

	t.Run("disallowed fields dropped", func(t *testing.T) {
		_, err := ticketLogic.UpdateTicket(ticket.Id, map[string]interface{}{
			"user_id": int64(42),
		})
		assert.Error(t, err)

		var got model.TicketModel
		require.NoError(t, db.First(&got, ticket.Id).Error)
		assert.Equal(t, user.Id, got.UserId)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		_, err := ticketLogic.UpdateTicket(ticket.Id, map[string]interface{}{
			"status": "resolved",
		})
		assert.Error(t, err)
	})

	t.Run("missing ticket returns not found", func(t *testing.T) {
		_, err := ticketLogic.UpdateTicket(99999, map[string]interface{}{
			"status": string(model.TicketStatusClosed),
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTicketLogic_GetMyTickets(t *testing.T) {
	db := setupTestDB(t)
	ticketLogic := NewTicketLogic(db)
	alice := createTestUser(t, db, "alice", model.UserRoleUser)
	bob := createTestUser(t, db, "bob", model.UserRoleUser)

	require.NoError(t, ticketLogic.CreateTicket(&model.TicketModel{Subject: "a", Message: "a"}, alice))
	require.NoError(t, ticketLogic.CreateTicket(&model.TicketModel{Subject: "b", Message: "b"}, alice))
	require.NoError(t, ticketLogic.CreateTicket(&model.TicketModel{Subject: "c", Message: "c"}, bob))

	tickets, err := ticketLogic.GetMyTickets(alice.Id)
	require.NoError(t, err)
	assert.Len(t, tickets, 2)
}
