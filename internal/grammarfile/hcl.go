package grammarfile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

type hclFile struct {
	Commands []hclCommand `hcl:"command,block"`
}

type hclCommand struct {
	Keyword         string      `hcl:"keyword,label"`
	Summary         string      `hcl:"summary,optional"`
	Argument        string      `hcl:"argument,optional"`
	ArgName         string      `hcl:"arg_name,optional"`
	EmptyArgMessage string      `hcl:"empty_arg_message,optional"`
	Run             string      `hcl:"run,optional"`
	Switches        []hclSwitch `hcl:"switch,block"`
}

type hclSwitch struct {
	Name    string `hcl:"name,label"`
	Level   string `hcl:"level,optional"`
	Alias   string `hcl:"alias,optional"`
	Summary string `hcl:"summary,optional"`
}

// levelVariables lets HCL files write `level = required` without quotes.
var levelVariables = map[string]cty.Value{
	"none":     cty.StringVal("none"),
	"optional": cty.StringVal("optional"),
	"required": cty.StringVal("required"),
}

func decodeHCL(path string, data []byte) ([]fileCommand, error) {
	f, diags := hclparse.NewParser().ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid HCL: %s", diags.Error())
	}
	var hf hclFile
	evalCtx := &hcl.EvalContext{Variables: levelVariables}
	if diags := gohcl.DecodeBody(f.Body, evalCtx, &hf); diags.HasErrors() {
		return nil, fmt.Errorf("invalid HCL: %s", diags.Error())
	}
	out := make([]fileCommand, 0, len(hf.Commands))
	for _, c := range hf.Commands {
		fc := fileCommand{
			Keyword:         c.Keyword,
			Summary:         c.Summary,
			Argument:        c.Argument,
			ArgName:         c.ArgName,
			EmptyArgMessage: c.EmptyArgMessage,
			Run:             c.Run,
		}
		for _, s := range c.Switches {
			fc.Switches = append(fc.Switches, fileSwitch(s))
		}
		out = append(out, fc)
	}
	return out, nil
}
