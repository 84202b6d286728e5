package math

// Transform represents the position, rotation and scale of an object in the
// world. Transforms can have a parent whose own transform is then taken into
// account. Properties should be mutated through the methods below so the
// dirty flag stays correct.
type Transform struct {
	Position Vec3
	Rotation Quaternion
	Scale    Vec3
	// Set whenever position, rotation or scale change, indicating that the
	// local matrix needs to be recalculated.
	IsDirty bool
	Local   Mat4
	Parent  *Transform
}

func TransformCreate() *Transform {
	t := &Transform{}
	t.SetPositionRotationScale(NewVec3Zero(), NewQuatIdentity(), NewVec3One())
	t.Local = NewMat4Identity()
	return t
}

func TransformFromPosition(position Vec3) *Transform {
	t := TransformCreate()
	t.SetPosition(position)
	return t
}

func TransformFromPositionRotationScale(position Vec3, rotation Quaternion, scale Vec3) *Transform {
	t := &Transform{}
	t.SetPositionRotationScale(position, rotation, scale)
	t.Local = NewMat4Identity()
	return t
}

func (t *Transform) SetPosition(position Vec3) {
	t.Position = position
	t.IsDirty = true
}

func (t *Transform) Translate(translation Vec3) {
	t.Position = t.Position.Add(translation)
	t.IsDirty = true
}

func (t *Transform) SetRotation(rotation Quaternion) {
	t.Rotation = rotation
	t.IsDirty = true
}

func (t *Transform) Rotate(rotation Quaternion) {
	t.Rotation = t.Rotation.Mul(rotation)
	t.IsDirty = true
}

func (t *Transform) SetScale(scale Vec3) {
	t.Scale = scale
	t.IsDirty = true
}

func (t *Transform) SetPositionRotationScale(position Vec3, rotation Quaternion, scale Vec3) {
	t.Position = position
	t.Rotation = rotation
	t.Scale = scale
	t.IsDirty = true
}

// GetLocal returns the local transformation matrix, recalculating it first
// if any component changed since the last call.
func (t *Transform) GetLocal() Mat4 {
	if t.IsDirty {
		m := t.Rotation.ToMat4()
		tr := m.Mul(NewMat4Translation(t.Position))
		tr = NewMat4Scale(t.Scale).Mul(tr)
		t.Local = tr
		t.IsDirty = false
	}
	return t.Local
}

// GetWorld returns the world matrix, folding in every ancestor's transform.
func (t *Transform) GetWorld() Mat4 {
	local := t.GetLocal()
	if t.Parent != nil {
		return local.Mul(t.Parent.GetWorld())
	}
	return local
}
