package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"ballbox/internal/backdrop"
	"ballbox/internal/batch"
	"ballbox/internal/sim"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws the backdrop and flushes the queued shapes and text. It
// embeds the batch so the scene can draw straight into it.
type Renderer struct {
	*batch.Batch

	// Backdrop program.
	bgProg uint32
	bgVAO  uint32
	bgVBO  uint32

	bgURes    int32
	bgUBall   int32
	bgURipple int32
	bgUTime   int32

	// Shape (point sprite) program.
	shapeProg uint32
	shapeVAO  uint32
	shapeVBO  uint32

	shapeURes       int32
	shapeUStroke    int32
	shapeUStrokeCol int32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32

	fbW, fbH int
}

var _ sim.Canvas = (*Renderer)(nil)

func NewRenderer() (*Renderer, error) {
	bgProg, err := linkProgram(backdropVertSrc, backdropFragSrc)
	if err != nil {
		return nil, fmt.Errorf("backdrop program: %w", err)
	}
	shapeProg, err := linkProgram(shapeVertSrc, shapeFragSrc)
	if err != nil {
		gl.DeleteProgram(bgProg)
		return nil, fmt.Errorf("shape program: %w", err)
	}

	r := &Renderer{
		Batch:     batch.New(TextScale, 0),
		bgProg:    bgProg,
		shapeProg: shapeProg,
	}

	// Backdrop VAO/VBO: one quad covering the viewport (6 vertices, 2 triangles).
	var bVAO, bVBO uint32
	gl.GenVertexArrays(1, &bVAO)
	gl.GenBuffers(1, &bVBO)
	gl.BindVertexArray(bVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, bVBO)

	quadVerts := [12]float32{
		-1, -1, 1, -1, 1, 1,
		-1, -1, 1, 1, -1, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.bgVAO = bVAO
	r.bgVBO = bVBO

	gl.UseProgram(bgProg)
	r.bgURes = gl.GetUniformLocation(bgProg, gl.Str("uResolution\x00"))
	r.bgUBall = gl.GetUniformLocation(bgProg, gl.Str("uBall\x00"))
	r.bgURipple = gl.GetUniformLocation(bgProg, gl.Str("uRipple\x00"))
	r.bgUTime = gl.GetUniformLocation(bgProg, gl.Str("uTime\x00"))

	// Shape VAO/VBO: streaming buffer for point sprites.
	// Each sprite: 8 floats (x, y, size, r, g, b, a, kind).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(batch.SpriteFloats * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSprites*int(stride), nil, gl.STREAM_DRAW)
	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	// aKind (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.shapeVAO = sVAO
	r.shapeVBO = sVBO

	gl.UseProgram(shapeProg)
	r.shapeURes = gl.GetUniformLocation(shapeProg, gl.Str("uResolution\x00"))
	r.shapeUStroke = gl.GetUniformLocation(shapeProg, gl.Str("uStroke\x00"))
	r.shapeUStrokeCol = gl.GetUniformLocation(shapeProg, gl.Str("uStrokeColor\x00"))
	sc := sim.Palette.Stroke
	gl.Uniform1f(r.shapeUStroke, sim.StrokeWeight)
	gl.Uniform3f(r.shapeUStrokeCol, float32(sc.R)/255, float32(sc.G)/255, float32(sc.B)/255)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.bgVBO, r.shapeVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.bgVAO, r.shapeVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.bgProg, r.shapeProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// BeginFrame clears the framebuffer and drops last frame's queued draws.
func (r *Renderer) BeginFrame(fbW, fbH int) {
	r.fbW, r.fbH = fbW, fbH
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.Reset()
}

// DrawBackdrop paints the dot grid over the whole viewport.
func (r *Renderer) DrawBackdrop(p backdrop.Params) {
	gl.UseProgram(r.bgProg)
	gl.BindVertexArray(r.bgVAO)

	gl.Uniform2f(r.bgURes, float32(p.Width), float32(p.Height))
	ripple := float32(0)
	var bx, by float32
	if p.Ripple {
		ripple = 1
		bx, by = float32(p.BallX), float32(p.Height-p.BallY)
	}
	gl.Uniform2f(r.bgUBall, bx, by)
	gl.Uniform1f(r.bgURipple, ripple)
	gl.Uniform1f(r.bgUTime, float32(p.Time))

	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// FlushShapes draws all queued point sprites with alpha blending.
func (r *Renderer) FlushShapes() {
	if len(r.Sprites) == 0 {
		return
	}
	count := min(r.SpriteCount(), MaxSprites)

	gl.UseProgram(r.shapeProg)
	gl.BindVertexArray(r.shapeVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.shapeVBO)
	gl.Uniform2f(r.shapeURes, float32(r.fbW), float32(r.fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*batch.SpriteFloats*4, gl.Ptr(r.Sprites), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}
