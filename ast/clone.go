package ast

// Clone returns a deep copy of the tree rooted at n. The copy shares no
// mutation path with the original, so transformation passes can derive new
// trees without touching the nodes they were given.

func (n *Program) Clone() *Program {
	return &Program{
		SourceType: n.SourceType,
		Body:       n.Body.Clone(),
	}
}

func (n *Expression) Clone() Expression {
	if n == nil || n.Expr == nil {
		return Expression{}
	}
	return Expression{Expr: cloneExpr(n.Expr)}
}

func (n *Statement) Clone() Statement {
	if n == nil || n.Stmt == nil {
		return Statement{}
	}
	return Statement{Stmt: cloneStmt(n.Stmt)}
}

func (n Expressions) Clone() Expressions {
	if n == nil {
		return nil
	}
	out := make(Expressions, len(n))
	for i := range n {
		out[i] = n[i].Clone()
	}
	return out
}

func (n Statements) Clone() Statements {
	if n == nil {
		return nil
	}
	out := make(Statements, len(n))
	for i := range n {
		out[i] = n[i].Clone()
	}
	return out
}

func cloneExprPtr(n *Expression) *Expression {
	if n == nil {
		return nil
	}
	c := n.Clone()
	return &c
}

func cloneExpr(e Expr) Expr {
	switch e := e.(type) {
	case *ThisExpression:
		return &ThisExpression{}
	case *SuperExpression:
		return &SuperExpression{}
	case *MetaProperty:
		return &MetaProperty{}
	case *Identifier:
		return e.Clone()
	case *NullLiteral:
		return &NullLiteral{}
	case *BooleanLiteral:
		return &BooleanLiteral{Value: e.Value}
	case *NumberLiteral:
		return &NumberLiteral{Value: e.Value}
	case *StringLiteral:
		return &StringLiteral{Value: e.Value}
	case *RegExpLiteral:
		return &RegExpLiteral{Pattern: e.Pattern, Flags: e.Flags}
	case *ArrayLiteral:
		return &ArrayLiteral{Value: e.Value.Clone()}
	case *ObjectLiteral:
		return &ObjectLiteral{Value: e.Value.Clone()}
	case *FunctionLiteral:
		return e.Clone()
	case *TemplateLiteral:
		return &TemplateLiteral{Elements: e.Elements.Clone()}
	case *SpreadElement:
		return &SpreadElement{Expression: e.Expression.Clone()}
	case *MemberExpression:
		return &MemberExpression{
			Object:   cloneExprPtr(e.Object),
			Property: cloneExprPtr(e.Property),
			Computed: e.Computed,
		}
	case *NewExpression:
		return &NewExpression{
			Callee:       cloneExprPtr(e.Callee),
			ArgumentList: e.ArgumentList.Clone(),
		}
	case *CallExpression:
		return &CallExpression{
			Callee:       cloneExprPtr(e.Callee),
			ArgumentList: e.ArgumentList.Clone(),
		}
	case *TaggedTemplateExpression:
		return &TaggedTemplateExpression{
			Tag:   cloneExprPtr(e.Tag),
			Quasi: cloneExprPtr(e.Quasi),
		}
	case *UpdateExpression:
		return &UpdateExpression{
			Operator: e.Operator,
			Operand:  cloneExprPtr(e.Operand),
			Prefix:   e.Prefix,
		}
	case *UnaryExpression:
		return &UnaryExpression{
			Operator: e.Operator,
			Operand:  cloneExprPtr(e.Operand),
		}
	case *BinaryExpression:
		return &BinaryExpression{
			Operator: e.Operator,
			Left:     cloneExprPtr(e.Left),
			Right:    cloneExprPtr(e.Right),
		}
	case *ConditionalExpression:
		return &ConditionalExpression{
			Test:       cloneExprPtr(e.Test),
			Alternate:  cloneExprPtr(e.Alternate),
			Consequent: cloneExprPtr(e.Consequent),
		}
	case *AssignExpression:
		return &AssignExpression{
			Operator: e.Operator,
			Left:     cloneExprPtr(e.Left),
			Right:    cloneExprPtr(e.Right),
		}
	case *YieldExpression:
		return &YieldExpression{
			Argument: cloneExprPtr(e.Argument),
			Delegate: e.Delegate,
		}
	case *SequenceExpression:
		return &SequenceExpression{Sequence: e.Sequence.Clone()}
	case *JsxElement:
		return &JsxElement{
			Name:       e.Name,
			Attributes: e.Attributes.Clone(),
			Children:   e.Children.Clone(),
		}
	case *JsxFragment:
		return &JsxFragment{Children: e.Children.Clone()}
	}
	// Matching sentinels (Any, Capture) and unknown future nodes are stateless
	// from the tree's point of view and pass through unchanged.
	return e
}

func cloneStmt(s Stmt) Stmt {
	switch s := s.(type) {
	case *ExpressionStatement:
		return &ExpressionStatement{Expression: cloneExprPtr(s.Expression)}
	case *BlockStatement:
		return &BlockStatement{List: s.List.Clone()}
	case *EmptyStatement:
		return &EmptyStatement{}
	case *ReturnStatement:
		return &ReturnStatement{Argument: cloneExprPtr(s.Argument)}
	case *IfStatement:
		n := &IfStatement{
			Test: cloneExprPtr(s.Test),
		}
		if s.Consequent != nil {
			c := s.Consequent.Clone()
			n.Consequent = &c
		}
		if s.Alternate != nil {
			a := s.Alternate.Clone()
			n.Alternate = &a
		}
		return n
	case *WhileStatement:
		n := &WhileStatement{Test: cloneExprPtr(s.Test)}
		if s.Body != nil {
			b := s.Body.Clone()
			n.Body = &b
		}
		return n
	case *VariableDeclaration:
		return &VariableDeclaration{
			Kind: s.Kind,
			List: s.List.Clone(),
		}
	case *FunctionDeclaration:
		return &FunctionDeclaration{Function: s.Function.Clone()}
	}
	return s
}

func (n *Identifier) Clone() *Identifier {
	return &Identifier{Name: n.Name}
}

func (n *FunctionLiteral) Clone() *FunctionLiteral {
	out := &FunctionLiteral{
		Body:      n.Body.Clone(),
		Async:     n.Async,
		Generator: n.Generator,
	}
	if n.Name != nil {
		out.Name = n.Name.Clone()
	}
	if n.ParameterList != nil {
		out.ParameterList = make([]Identifier, len(n.ParameterList))
		copy(out.ParameterList, n.ParameterList)
	}
	return out
}

func (n Properties) Clone() Properties {
	if n == nil {
		return nil
	}
	out := make(Properties, len(n))
	for i := range n {
		out[i] = n[i].Clone()
	}
	return out
}

func (n *Property) Clone() Property {
	return Property{
		Key:   cloneExprPtr(n.Key),
		Value: cloneExprPtr(n.Value),
		Kind:  n.Kind,
	}
}

func (n TemplateLiteralElements) Clone() TemplateLiteralElements {
	if n == nil {
		return nil
	}
	out := make(TemplateLiteralElements, len(n))
	for i := range n {
		out[i] = n[i].Clone()
	}
	return out
}

func (n *TemplateLiteralElement) Clone() TemplateLiteralElement {
	switch c := n.Chunk.(type) {
	case *TemplateElement:
		return TemplateLiteralElement{Chunk: &TemplateElement{Raw: c.Raw, Cooked: c.Cooked}}
	case *Expression:
		return TemplateLiteralElement{Chunk: cloneExprPtr(c)}
	}
	return TemplateLiteralElement{}
}

func (n JsxAttributes) Clone() JsxAttributes {
	if n == nil {
		return nil
	}
	out := make(JsxAttributes, len(n))
	for i := range n {
		out[i] = n[i].Clone()
	}
	return out
}

func (n *JsxAttribute) Clone() JsxAttribute {
	switch a := n.Attr.(type) {
	case *JsxNamedAttribute:
		return JsxAttribute{Attr: &JsxNamedAttribute{
			Name:  a.Name,
			Value: cloneExprPtr(a.Value),
		}}
	case *JsxSpreadAttribute:
		return JsxAttribute{Attr: &JsxSpreadAttribute{
			Expression: a.Expression.Clone(),
		}}
	}
	return JsxAttribute{}
}

func (n VariableDeclarators) Clone() VariableDeclarators {
	if n == nil {
		return nil
	}
	out := make(VariableDeclarators, len(n))
	for i := range n {
		out[i] = n[i].Clone()
	}
	return out
}

func (n *VariableDeclarator) Clone() VariableDeclarator {
	return VariableDeclarator{
		Target:      Identifier{Name: n.Target.Name},
		Initializer: cloneExprPtr(n.Initializer),
	}
}
