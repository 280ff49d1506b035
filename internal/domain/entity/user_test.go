package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUser_SetMembership(t *testing.T) {
	owned := uuid.New()
	wishlisted := uuid.New()
	user := &User{
		Library:  []uuid.UUID{owned},
		Wishlist: []uuid.UUID{wishlisted},
	}

	assert.True(t, user.Owns(owned))
	assert.False(t, user.Owns(wishlisted))
	assert.True(t, user.HasWishlisted(wishlisted))
	assert.False(t, user.HasWishlisted(owned))
}

func TestUser_HasStoredCard(t *testing.T) {
	user := &User{}
	assert.False(t, user.HasStoredCard())

	user.Card = &PaymentCard{Number: "1234567812345678"}
	assert.False(t, user.HasStoredCard())

	user.Card = &PaymentCard{
		Number:     "1234567812345678",
		Expiration: "12/27",
		CVV:        "123",
	}
	assert.True(t, user.HasStoredCard())
}
