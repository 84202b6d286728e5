package systems

// System is one component system registered with the application. Hooks are
// invoked by the lifecycle controller in a fixed per-frame order; all of
// them run on the frame thread.
type System interface {
	Name() string
	Initialize() error
	PostInitialize() error
	Update(deltaTime float64) error
	PostUpdate(deltaTime float64) error
	// Destroy must be idempotent; teardown never rolls back.
	Destroy() error
}

// PostPostInitializer is implemented by systems that need a third
// initialization pass, after every system has finished PostInitialize.
type PostPostInitializer interface {
	PostPostInitialize() error
}

// FixedUpdater is implemented by systems that want the fixed-step hook.
// It only fires when the application runs in legacy update mode.
type FixedUpdater interface {
	FixedUpdate(step float64) error
}

// AnimationUpdater is implemented by systems that advance animation state
// between Update and PostUpdate.
type AnimationUpdater interface {
	AnimationUpdate(deltaTime float64) error
}
