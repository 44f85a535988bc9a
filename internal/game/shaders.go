package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Background vertex shader: full-viewport quad given in NDC.
const backdropVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;

void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
}
` + "\x00"

// Background fragment shader: dot grid whose dot size pulses in square
// rings around the crash point. Mirrors internal/backdrop.
const backdropFragSrc = `#version 410 core

uniform vec2 uResolution;
uniform vec2 uBall;    // GL pixel space, Y up
uniform float uRipple; // 0 = idle sentinel
uniform float uTime;

out vec4 FragColor;

float radial(vec2 uv, vec2 center) {
    if (uRipple < 0.5) {
        return 1.8;
    }
    float d = max(abs(uv.x - center.x), abs(uv.y - center.y));
    return sin(d * 20.0 - uTime * 20.0) * 0.5 + 0.5;
}

float grid(vec2 uv, float size) {
    vec2 g = fract(uv / 0.026 + 0.5) - 0.5;
    float d = max(abs(g.x), abs(g.y));
    return 1.0 - smoothstep(size * 0.5 - 0.02, size * 0.5 + 0.02, d);
}

void main() {
    float side = min(uResolution.x, uResolution.y);
    vec2 uv = (gl_FragCoord.xy - 0.5 * uResolution) / side;
    vec2 ballUV = (uBall - 0.5 * uResolution) / side;

    float pulse = radial(uv, ballUV);
    float cover = grid(uv, 0.3 * (1.0 + pulse));

    vec3 color = mix(vec3(0.5), vec3(0.6), cover);
    FragColor = vec4(color, 1.0);
}
` + "\x00"

// Shape vertex shader: point sprites in framebuffer pixels, origin top-left.
const shapeVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in float aSize;
layout(location = 2) in vec4 aColor;
layout(location = 3) in float aKind;

uniform vec2 uResolution;

out vec4 vColor;
out float vSize;
out float vKind;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    gl_PointSize = max(1.0, aSize);
    vColor = aColor;
    vSize = aSize;
    vKind = aKind;
}
` + "\x00"

// Shape fragment shader: kind 0 outlined circle, 1 outlined square,
// 2 borderless round particle.
const shapeFragSrc = `#version 410 core

uniform float uStroke;
uniform vec3 uStrokeColor;

in vec4 vColor;
in float vSize;
in float vKind;
out vec4 FragColor;

void main() {
    vec2 p = (gl_PointCoord - vec2(0.5)) * vSize;
    float edge = vSize * 0.5;
    bool square = vKind > 0.5 && vKind < 1.5;

    float d = square ? max(abs(p.x), abs(p.y)) : length(p);
    if (d > edge) discard;

    vec3 col = vColor.rgb;
    if (vKind < 1.5 && d > edge - uStroke) {
        col = uStrokeColor;
    }
    FragColor = vec4(col, vColor.a);
}
` + "\x00"

// Text vertex shader: screen-space textured quads for font rendering.
const textVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;

uniform vec2 uResolution;

out vec2 vUV;
out vec4 vColor;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
` + "\x00"

// Text fragment shader: atlas coverage tinted by the vertex colour.
const textFragSrc = `#version 410 core

uniform sampler2D uFontTex;

in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

void main() {
    vec4 t = texture(uFontTex, vUV);
    if (t.a < 0.01) discard;
    FragColor = vec4(t.rgb * vColor.rgb, t.a * vColor.a);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
