// Package shade holds the panel compositing rule: the GLSL program run
// on the GPU and a software reference implementation of the same
// per-pixel math used by tests and tooling.
package shade

// Uniform names looked up on the compiled program.
const (
	UniformBackground = "backgroundTex"
	UniformScroll     = "scrollOffset"
	UniformTint       = "tintLevel"
)

// Color bias constants of the compositing rule. Every visible fragment
// is pushed toward deep blue; the tint level adds a gray component used
// as a per-layer depth cue (negative tint darkens).
const (
	BiasR = 0.0
	BiasG = 0.1
	BiasB = 0.6

	TintScale = 0.1

	// Panel alpha at or above this is treated as a cut-out hole.
	CutoutThreshold = 0.5
)

// VertexSource transforms the panel quad and passes texture
// coordinates through.
const VertexSource = `
#version 120
attribute vec3 vertexPosition;
attribute vec2 vertexTexCoord;
uniform mat4 mvp;
varying vec2 fragTexCoord;
void main() {
    fragTexCoord = vertexTexCoord;
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

// FragmentSource implements the cut-out rule: opaque regions of the
// panel image are discarded, transparent regions show the scrolled,
// tinted background. texture0 is the panel image (raylib's default
// diffuse slot), backgroundTex wraps in both axes.
const FragmentSource = `
#version 120
varying vec2 fragTexCoord;
uniform sampler2D texture0;
uniform sampler2D backgroundTex;
uniform vec2 scrollOffset;
uniform float tintLevel;
void main() {
    vec4 panel = texture2D(texture0, fragTexCoord);
    if (panel.a >= 0.5) {
        discard;
    }
    vec4 bg = texture2D(backgroundTex, fragTexCoord + scrollOffset);
    gl_FragColor = vec4(bg.rgb + vec3(0.0, 0.1, 0.6) + vec3(0.1) * tintLevel, bg.a);
}
`
