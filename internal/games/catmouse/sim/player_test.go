package sim

import (
	"math"
	"testing"
)

const eps = 1e-9

func newTestPlayer() *Player {
	cfg := testConfig()
	return NewPlayer(cfg.Player, float64(cfg.Screen.Height))
}

func TestPlayerHitboxFollowsPosition(t *testing.T) {
	p := newTestPlayer()
	hb := p.cfg.Hitbox

	check := func(when string) {
		t.Helper()
		got := p.Hitbox(0)
		if got.X != p.X()+hb.OffsetX || got.Y != p.Y()+hb.OffsetY || got.W != hb.Width || got.H != hb.Height {
			t.Errorf("%s: hitbox %+v out of sync with (%v, %v)", when, got, p.X(), p.Y())
		}
	}

	check("initial")
	p.Update(nil, 0)
	check("after gravity")
	p.setPosition(10, 20)
	check("after setPosition")
}

func TestPlayerLanding(t *testing.T) {
	p := newTestPlayer()
	cfg := testConfig()
	// Player hitbox bottom is 364; a gravity step of 5.8 crosses a top at 366.
	platform := NewPlatform(300, 366, 200, cfg.Platforms)

	p.velY = 5
	p.jumping = true
	p.Update([]*Platform{platform}, 0)

	if p.VelY() != 0 {
		t.Errorf("VelY() = %v, want 0", p.VelY())
	}
	if p.IsJumping() {
		t.Error("landing should clear the jumping flag")
	}
	if !p.OnGround() {
		t.Error("player should be grounded")
	}
	if got, want := p.Hitbox(0).Bottom(), platform.Hitbox(p.WorldX()).Y; math.Abs(got-want) > eps {
		t.Errorf("hitbox bottom = %v, want platform top %v", got, want)
	}
}

func TestPlayerLandingUsesWorldX(t *testing.T) {
	p := newTestPlayer()
	cfg := testConfig()
	// Platform spans world x 1300..1500; after scrolling 1000 its screen x is 300..500.
	platform := NewPlatform(1300, 366, 200, cfg.Platforms)

	p.velY = 5
	p.Update([]*Platform{platform}, 0)
	if p.OnGround() {
		t.Fatal("platform is off screen before scrolling")
	}

	p = newTestPlayer()
	p.worldX = 995
	p.velY = 5
	p.Update([]*Platform{platform}, 5)
	if p.WorldX() != 1000 {
		t.Fatalf("WorldX() = %v, want 1000", p.WorldX())
	}
	if !p.OnGround() {
		t.Error("player should land on the scrolled platform")
	}
}

func TestPlayerHeadBump(t *testing.T) {
	p := newTestPlayer()
	cfg := testConfig()
	// Hitbox top is 314; rising 9.2 moves it to 304.8, inside a strip at 300..310.
	platform := NewPlatform(300, 300, 200, cfg.Platforms)

	p.velY = -10
	p.jumping = true
	p.Update([]*Platform{platform}, 0)

	if p.VelY() != 0 {
		t.Errorf("VelY() = %v, want 0", p.VelY())
	}
	if !p.IsJumping() {
		t.Error("head bump must not touch the jumping flag")
	}
	if got, want := p.Hitbox(0).Y, platform.Hitbox(0).Bottom(); math.Abs(got-want) > eps {
		t.Errorf("hitbox top = %v, want platform bottom %v", got, want)
	}
}

func TestPlayerScreenFloor(t *testing.T) {
	p := newTestPlayer()
	floor := float64(testConfig().Screen.Height) - p.Height()

	p.setPosition(p.X(), floor-6)
	p.velY = 10
	p.jumping = true
	p.Update(nil, 0)

	if p.Y() != floor {
		t.Errorf("Y() = %v, want floor %v", p.Y(), floor)
	}
	if p.VelY() != 0 || p.IsJumping() {
		t.Error("floor should stop the fall and clear jumping")
	}
}

func TestPlayerJumpOnlyOnce(t *testing.T) {
	p := newTestPlayer()

	p.Jump()
	if p.VelY() != -p.cfg.JumpPower || !p.IsJumping() {
		t.Fatalf("first jump: vel %v jumping %v", p.VelY(), p.IsJumping())
	}
	p.Update(nil, 0)
	vel := p.VelY()

	p.Jump()
	if p.VelY() != vel {
		t.Errorf("airborne jump changed velocity: %v -> %v", vel, p.VelY())
	}
}

func TestPlayerMove(t *testing.T) {
	p := newTestPlayer()
	speed := p.cfg.Speed

	tests := []struct {
		dir         int
		want        float64
		facingRight bool
	}{
		{1, speed, true},
		{-1, -speed, false},
		{0, 0, false},
		{1, speed, true},
	}
	for _, tc := range tests {
		x, y := p.X(), p.Y()
		if got := p.Move(tc.dir); got != tc.want {
			t.Errorf("Move(%d) = %v, want %v", tc.dir, got, tc.want)
		}
		if p.FacingRight() != tc.facingRight {
			t.Errorf("Move(%d): FacingRight() = %v", tc.dir, p.FacingRight())
		}
		if p.X() != x || p.Y() != y {
			t.Errorf("Move(%d) must not change the position", tc.dir)
		}
	}
}

func TestPlayerOnCollide(t *testing.T) {
	p := newTestPlayer()
	cfg := testConfig()

	p.OnCollide(NewMouse(0, 0, cfg.Mice))
	p.OnCollide(NewMouse(0, 0, cfg.Mice))
	if p.Caught() != 2 {
		t.Errorf("Caught() = %d, want 2", p.Caught())
	}

	// Sink the player into a platform strip while falling.
	platform := NewPlatform(300, 360, 200, cfg.Platforms)
	p.velY = 3
	p.OnCollide(platform)
	if got := p.Hitbox(0).Bottom(); got != 360 {
		t.Errorf("hitbox bottom after resolve = %v, want 360", got)
	}
}
