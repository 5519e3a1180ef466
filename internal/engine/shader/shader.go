// Package shader compiles GLSL programs and uploads uniforms by name.
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/orrery/internal/engine/shader/shaders"
	"github.com/Faultbox/orrery/pkg/math"
)

// CompileProgram compiles vertex and fragment shaders and links them into a program.
// Returns the program ID or an error if compilation/linking fails.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := infoLog(program, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", log)
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := infoLog(shader, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, log)
	}

	return shader, nil
}

func infoLog(obj uint32,
	getiv func(uint32, uint32, *int32),
	getLog func(uint32, int32, *int32, *uint8)) string {
	var logLen int32
	getiv(obj, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return "(no info log)"
	}
	log := make([]byte, logLen)
	getLog(obj, logLen, nil, &log[0])
	return string(log[:len(log)-1])
}

// Program is a linked shader program with cached uniform locations.
//
// A Program with ID 0 is invalid: Use and the Set methods do nothing, so a
// pass whose shader failed to build is skipped instead of drawing garbage.
type Program struct {
	ID   uint32
	Name string

	uniforms map[string]int32
}

// Build loads a program's sources from lib and compiles them. On failure it
// returns an invalid Program along with the error.
func Build(lib shaders.Library, name string) (*Program, error) {
	p := &Program{Name: name}
	src, err := lib.Load(name)
	if err != nil {
		return p, err
	}
	id, err := CompileProgram(src.Vertex, src.Fragment)
	if err != nil {
		return p, fmt.Errorf("program %s: %w", name, err)
	}
	p.ID = id
	p.uniforms = make(map[string]int32)
	return p, nil
}

// Valid reports whether the program linked.
func (p *Program) Valid() bool {
	return p != nil && p.ID != 0
}

// Replace swaps in a newly built program, deleting the old one. An invalid
// replacement is ignored so a broken edit keeps the last good program.
func (p *Program) Replace(next *Program) bool {
	if !next.Valid() {
		return false
	}
	p.Delete()
	p.ID = next.ID
	p.uniforms = next.uniforms
	return true
}

// Use makes the program current.
func (p *Program) Use() {
	if !p.Valid() {
		return
	}
	gl.UseProgram(p.ID)
}

// Delete frees the program.
func (p *Program) Delete() {
	if !p.Valid() {
		return
	}
	gl.DeleteProgram(p.ID)
	p.ID = 0
	p.uniforms = nil
}

// location returns the cached uniform location, -1 if the uniform is not
// active.
func (p *Program) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := GetUniform(p.ID, name)
	p.uniforms[name] = loc
	return loc
}

// SetMat4 uploads a 4x4 matrix uniform. The program must be current.
func (p *Program) SetMat4(name string, m math.Mat4) {
	if !p.Valid() {
		return
	}
	gl.UniformMatrix4fv(p.location(name), 1, false, m.Ptr())
}

// SetVec3 uploads a vec3 uniform.
func (p *Program) SetVec3(name string, v math.Vec3) {
	if !p.Valid() {
		return
	}
	gl.Uniform3f(p.location(name), v.X, v.Y, v.Z)
}

// SetInt uploads an int or sampler uniform.
func (p *Program) SetInt(name string, i int32) {
	if !p.Valid() {
		return
	}
	gl.Uniform1i(p.location(name), i)
}

// GetUniform returns the uniform location for the given name, or -1 if the
// uniform is not found or inactive.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
