package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	assert.Equal(t, "Todo_List_App", Slug("Todo List App"))
	assert.Equal(t, "My_App", Slug("  My   App "))
	assert.Equal(t, "", Slug("   "))
}

func TestSlug_Idempotent(t *testing.T) {
	once := Slug("Recipe Box App")
	assert.Equal(t, once, Slug(once))
}

func TestTitleFromText(t *testing.T) {
	assert.Equal(t, "Recipe Box", TitleFromText("Recipe Box: save and tag your recipes"))
	assert.Equal(t, "Plain idea without colon", TitleFromText("Plain idea without colon"))
}

func TestSluggerClaim_NoCollision(t *testing.T) {
	s := newSlugger()
	slug, collided := s.Claim("Todo List App")
	assert.Equal(t, "Todo_List_App", slug)
	assert.False(t, collided)
}

func TestSluggerClaim_Collision(t *testing.T) {
	s := newSlugger()

	first, _ := s.Claim("My App")
	second, collided := s.Claim("My  App") // double space collapses to same slug

	assert.Equal(t, "My_App", first)
	assert.Equal(t, "My_App_2", second)
	assert.True(t, collided)

	third, collided := s.Claim("My App")
	assert.Equal(t, "My_App_3", third)
	assert.True(t, collided)
}

func TestSluggerClaim_SuffixAlreadyClaimed(t *testing.T) {
	s := newSlugger()

	s.Claim("My App 2")
	s.Claim("My App")
	slug, collided := s.Claim("My App") // My_App_2 is taken by a real title

	assert.Equal(t, "My_App_3", slug)
	assert.True(t, collided)
}

func TestSluggerClaim_EmptyTitle(t *testing.T) {
	s := newSlugger()
	slug, _ := s.Claim("  ")
	assert.Equal(t, "untitled", slug)
}
