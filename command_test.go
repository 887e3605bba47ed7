package glframe

import "testing"

func TestOp_String(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{OpUseProgram, "UseProgram"},
		{OpBindVertexArray, "BindVertexArray"},
		{OpBindBuffer, "BindBuffer"},
		{OpBufferData, "BufferData"},
		{OpEnableVertexAttrib, "EnableVertexAttrib"},
		{OpVertexAttribPointer, "VertexAttribPointer"},
		{OpDrawArrays, "DrawArrays"},
		{Op(200), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.op.String(); got != tt.want {
				t.Errorf("Op.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommandConstructors(t *testing.T) {
	data := []float32{1, 2, 3}

	tests := []struct {
		name string
		cmd  Command
		want Op
	}{
		{"use program", UseProgram(7), OpUseProgram},
		{"bind vao", BindVertexArray(3), OpBindVertexArray},
		{"bind buffer", BindBuffer(ArrayBuffer, 5), OpBindBuffer},
		{"buffer data", BufferFloatData(ArrayBuffer, data, StaticDraw), OpBufferData},
		{"enable attrib", EnableVertexAttrib(2), OpEnableVertexAttrib},
		{"attrib pointer", SetVertexAttribPointer(AttribPointer{Location: 2, Size: 3}), OpVertexAttribPointer},
		{"draw arrays", DrawArrays(Triangles, 0, 3), OpDrawArrays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.cmd.Op != tt.want {
				t.Errorf("Op = %v, want %v", tt.cmd.Op, tt.want)
			}
		})
	}
}

func TestShaderKind_String(t *testing.T) {
	tests := []struct {
		kind ShaderKind
		want string
	}{
		{VertexShader, "Vertex"},
		{FragmentShader, "Fragment"},
		{ShaderKind(9), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ShaderKind(%d).String() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}
