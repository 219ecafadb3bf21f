package components

import "github.com/go-gl/mathgl/mgl32"

// Transform is a model matrix.
type Transform struct {
	matrix mgl32.Mat4
}

// NewTransform composes translation * rotation * scale. Rotation is given as
// XYZ euler angles in degrees.
func NewTransform(translation, rotation, scale mgl32.Vec3) Transform {
	m := mgl32.Translate3D(translation.Elem()).
		Mul4(rotationMatrix(rotation)).
		Mul4(mgl32.Scale3D(scale.Elem()))
	return Transform{matrix: m}
}

func TransformFromTranslation(translation mgl32.Vec3) Transform {
	return Transform{matrix: mgl32.Translate3D(translation.Elem())}
}

func TransformFromRotation(rotation mgl32.Vec3) Transform {
	return Transform{matrix: rotationMatrix(rotation)}
}

// TransformFromAxisAngle rotates angleDegrees around axis. The axis does not
// need to be normalized.
func TransformFromAxisAngle(axis mgl32.Vec3, angleDegrees float32) Transform {
	return Transform{matrix: mgl32.HomogRotate3D(mgl32.DegToRad(angleDegrees), axis.Normalize())}
}

func TransformFromScale(scale mgl32.Vec3) Transform {
	return Transform{matrix: mgl32.Scale3D(scale.Elem())}
}

func IdentityTransform() Transform {
	return Transform{matrix: mgl32.Ident4()}
}

// Matrix returns the model matrix.
func (t Transform) Matrix() mgl32.Mat4 {
	return t.matrix
}

func rotationMatrix(rotation mgl32.Vec3) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(mgl32.DegToRad(rotation.X())).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(rotation.Y()))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rotation.Z())))
}

// TransformBuilder assembles a Transform from optional parts. The zero value
// is not ready for use; start from NewTransformBuilder.
type TransformBuilder struct {
	translation mgl32.Vec3
	rotation    mgl32.Vec3
	scale       mgl32.Vec3
}

// NewTransformBuilder starts from no translation, no rotation and unit scale.
func NewTransformBuilder() TransformBuilder {
	return TransformBuilder{scale: mgl32.Vec3{1, 1, 1}}
}

func (b TransformBuilder) WithTranslation(translation mgl32.Vec3) TransformBuilder {
	b.translation = translation
	return b
}

func (b TransformBuilder) WithRotation(rotation mgl32.Vec3) TransformBuilder {
	b.rotation = rotation
	return b
}

func (b TransformBuilder) WithScale(scale mgl32.Vec3) TransformBuilder {
	b.scale = scale
	return b
}

func (b TransformBuilder) Build() Transform {
	return NewTransform(b.translation, b.rotation, b.scale)
}
