package ast

// Visitor has one method per node type. Traversal is read-only by contract:
// a pass that needs a changed tree builds new nodes (see Clone) instead of
// editing the ones it visits.
type Visitor interface {
	VisitProgram(node *Program)
	VisitExpression(node *Expression)
	VisitExpressions(node *Expressions)
	VisitStatement(node *Statement)
	VisitStatements(node *Statements)

	VisitThisExpression(node *ThisExpression)
	VisitSuperExpression(node *SuperExpression)
	VisitMetaProperty(node *MetaProperty)
	VisitIdentifier(node *Identifier)
	VisitNullLiteral(node *NullLiteral)
	VisitBooleanLiteral(node *BooleanLiteral)
	VisitNumberLiteral(node *NumberLiteral)
	VisitStringLiteral(node *StringLiteral)
	VisitRegExpLiteral(node *RegExpLiteral)
	VisitArrayLiteral(node *ArrayLiteral)
	VisitObjectLiteral(node *ObjectLiteral)
	VisitProperty(node *Property)
	VisitFunctionLiteral(node *FunctionLiteral)
	VisitTemplateLiteral(node *TemplateLiteral)
	VisitTemplateLiteralElement(node *TemplateLiteralElement)
	VisitTemplateElement(node *TemplateElement)
	VisitSpreadElement(node *SpreadElement)
	VisitMemberExpression(node *MemberExpression)
	VisitNewExpression(node *NewExpression)
	VisitCallExpression(node *CallExpression)
	VisitTaggedTemplateExpression(node *TaggedTemplateExpression)
	VisitUpdateExpression(node *UpdateExpression)
	VisitUnaryExpression(node *UnaryExpression)
	VisitBinaryExpression(node *BinaryExpression)
	VisitConditionalExpression(node *ConditionalExpression)
	VisitAssignExpression(node *AssignExpression)
	VisitYieldExpression(node *YieldExpression)
	VisitSequenceExpression(node *SequenceExpression)
	VisitJsxElement(node *JsxElement)
	VisitJsxFragment(node *JsxFragment)
	VisitJsxAttribute(node *JsxAttribute)
	VisitJsxNamedAttribute(node *JsxNamedAttribute)
	VisitJsxSpreadAttribute(node *JsxSpreadAttribute)

	VisitExpressionStatement(node *ExpressionStatement)
	VisitBlockStatement(node *BlockStatement)
	VisitEmptyStatement(node *EmptyStatement)
	VisitReturnStatement(node *ReturnStatement)
	VisitIfStatement(node *IfStatement)
	VisitWhileStatement(node *WhileStatement)
	VisitVariableDeclaration(node *VariableDeclaration)
	VisitVariableDeclarator(node *VariableDeclarator)
	VisitFunctionDeclaration(node *FunctionDeclaration)
}

// NoopVisitor visits every node and does nothing. Embed it to implement only
// the methods a pass cares about. V must be set to the outermost visitor so
// that child traversal dispatches through the overriding methods.
type NoopVisitor struct {
	V Visitor
}

func (nv *NoopVisitor) VisitProgram(node *Program) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitExpression(node *Expression) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitExpressions(node *Expressions) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitStatement(node *Statement) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitStatements(node *Statements) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitThisExpression(node *ThisExpression) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitSuperExpression(node *SuperExpression) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitMetaProperty(node *MetaProperty) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitIdentifier(node *Identifier) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitNullLiteral(node *NullLiteral) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitBooleanLiteral(node *BooleanLiteral) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitNumberLiteral(node *NumberLiteral) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitStringLiteral(node *StringLiteral) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitRegExpLiteral(node *RegExpLiteral) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitArrayLiteral(node *ArrayLiteral) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitObjectLiteral(node *ObjectLiteral) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitProperty(node *Property) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitFunctionLiteral(node *FunctionLiteral) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitTemplateLiteral(node *TemplateLiteral) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitTemplateLiteralElement(node *TemplateLiteralElement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitTemplateElement(node *TemplateElement) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitSpreadElement(node *SpreadElement) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitMemberExpression(node *MemberExpression) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitNewExpression(node *NewExpression) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitCallExpression(node *CallExpression) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitTaggedTemplateExpression(node *TaggedTemplateExpression) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitUpdateExpression(node *UpdateExpression) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitUnaryExpression(node *UnaryExpression) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitBinaryExpression(node *BinaryExpression) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitConditionalExpression(node *ConditionalExpression) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitAssignExpression(node *AssignExpression) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitYieldExpression(node *YieldExpression) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitSequenceExpression(node *SequenceExpression) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitJsxElement(node *JsxElement) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitJsxFragment(node *JsxFragment) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitJsxAttribute(node *JsxAttribute) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitJsxNamedAttribute(node *JsxNamedAttribute) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitJsxSpreadAttribute(node *JsxSpreadAttribute) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitExpressionStatement(node *ExpressionStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitBlockStatement(node *BlockStatement) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitEmptyStatement(node *EmptyStatement) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitReturnStatement(node *ReturnStatement) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitIfStatement(node *IfStatement) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitWhileStatement(node *WhileStatement) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitVariableDeclaration(node *VariableDeclaration) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitVariableDeclarator(node *VariableDeclarator) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitFunctionDeclaration(node *FunctionDeclaration) {
	node.VisitChildrenWith(nv.V)
}

func (n *Program) VisitWith(v Visitor) { v.VisitProgram(n) }

func (n *Program) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
}

func (n *Expression) VisitWith(v Visitor) { v.VisitExpression(n) }

func (n *Expression) VisitChildrenWith(v Visitor) {
	if n.Expr != nil {
		n.Expr.VisitWith(v)
	}
}

func (n *Expressions) VisitWith(v Visitor) { v.VisitExpressions(n) }

func (n *Expressions) VisitChildrenWith(v Visitor) {
	for i := range *n {
		v.VisitExpression(&(*n)[i])
	}
}

func (n *Statement) VisitWith(v Visitor) { v.VisitStatement(n) }

func (n *Statement) VisitChildrenWith(v Visitor) {
	if n.Stmt != nil {
		n.Stmt.VisitWith(v)
	}
}

func (n *Statements) VisitWith(v Visitor) { v.VisitStatements(n) }

func (n *Statements) VisitChildrenWith(v Visitor) {
	for i := range *n {
		v.VisitStatement(&(*n)[i])
	}
}

func (n *ThisExpression) VisitWith(v Visitor) { v.VisitThisExpression(n) }

func (n *ThisExpression) VisitChildrenWith(v Visitor) {}

func (n *SuperExpression) VisitWith(v Visitor) { v.VisitSuperExpression(n) }

func (n *SuperExpression) VisitChildrenWith(v Visitor) {}

func (n *MetaProperty) VisitWith(v Visitor) { v.VisitMetaProperty(n) }

func (n *MetaProperty) VisitChildrenWith(v Visitor) {}

func (n *Identifier) VisitWith(v Visitor) { v.VisitIdentifier(n) }

func (n *Identifier) VisitChildrenWith(v Visitor) {}

func (n *NullLiteral) VisitWith(v Visitor) { v.VisitNullLiteral(n) }

func (n *NullLiteral) VisitChildrenWith(v Visitor) {}

func (n *BooleanLiteral) VisitWith(v Visitor) { v.VisitBooleanLiteral(n) }

func (n *BooleanLiteral) VisitChildrenWith(v Visitor) {}

func (n *NumberLiteral) VisitWith(v Visitor) { v.VisitNumberLiteral(n) }

func (n *NumberLiteral) VisitChildrenWith(v Visitor) {}

func (n *StringLiteral) VisitWith(v Visitor) { v.VisitStringLiteral(n) }

func (n *StringLiteral) VisitChildrenWith(v Visitor) {}

func (n *RegExpLiteral) VisitWith(v Visitor) { v.VisitRegExpLiteral(n) }

func (n *RegExpLiteral) VisitChildrenWith(v Visitor) {}

func (n *ArrayLiteral) VisitWith(v Visitor) { v.VisitArrayLiteral(n) }

func (n *ArrayLiteral) VisitChildrenWith(v Visitor) {
	for i := range n.Value {
		n.Value[i].VisitWith(v)
	}
}

func (n *ObjectLiteral) VisitWith(v Visitor) { v.VisitObjectLiteral(n) }

func (n *ObjectLiteral) VisitChildrenWith(v Visitor) {
	for i := range n.Value {
		n.Value[i].VisitWith(v)
	}
}

func (n *Property) VisitWith(v Visitor) { v.VisitProperty(n) }

func (n *Property) VisitChildrenWith(v Visitor) {
	n.Key.VisitWith(v)
	n.Value.VisitWith(v)
}

func (n *FunctionLiteral) VisitWith(v Visitor) { v.VisitFunctionLiteral(n) }

func (n *FunctionLiteral) VisitChildrenWith(v Visitor) {
	if n.Name != nil {
		n.Name.VisitWith(v)
	}
	for i := range n.ParameterList {
		n.ParameterList[i].VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *TemplateLiteral) VisitWith(v Visitor) { v.VisitTemplateLiteral(n) }

func (n *TemplateLiteral) VisitChildrenWith(v Visitor) {
	for i := range n.Elements {
		n.Elements[i].VisitWith(v)
	}
}

func (n *TemplateLiteralElement) VisitWith(v Visitor) { v.VisitTemplateLiteralElement(n) }

func (n *TemplateLiteralElement) VisitChildrenWith(v Visitor) {
	if n.Chunk != nil {
		n.Chunk.VisitWith(v)
	}
}

func (n *TemplateElement) VisitWith(v Visitor) { v.VisitTemplateElement(n) }

func (n *TemplateElement) VisitChildrenWith(v Visitor) {}

func (n *SpreadElement) VisitWith(v Visitor) { v.VisitSpreadElement(n) }

func (n *SpreadElement) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *MemberExpression) VisitWith(v Visitor) { v.VisitMemberExpression(n) }

func (n *MemberExpression) VisitChildrenWith(v Visitor) {
	n.Object.VisitWith(v)
	n.Property.VisitWith(v)
}

func (n *NewExpression) VisitWith(v Visitor) { v.VisitNewExpression(n) }

func (n *NewExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	n.ArgumentList.VisitWith(v)
}

func (n *CallExpression) VisitWith(v Visitor) { v.VisitCallExpression(n) }

func (n *CallExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	n.ArgumentList.VisitWith(v)
}

func (n *TaggedTemplateExpression) VisitWith(v Visitor) { v.VisitTaggedTemplateExpression(n) }

func (n *TaggedTemplateExpression) VisitChildrenWith(v Visitor) {
	n.Tag.VisitWith(v)
	n.Quasi.VisitWith(v)
}

func (n *UpdateExpression) VisitWith(v Visitor) { v.VisitUpdateExpression(n) }

func (n *UpdateExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *UnaryExpression) VisitWith(v Visitor) { v.VisitUnaryExpression(n) }

func (n *UnaryExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *BinaryExpression) VisitWith(v Visitor) { v.VisitBinaryExpression(n) }

func (n *BinaryExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *ConditionalExpression) VisitWith(v Visitor) { v.VisitConditionalExpression(n) }

func (n *ConditionalExpression) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Alternate.VisitWith(v)
	n.Consequent.VisitWith(v)
}

func (n *AssignExpression) VisitWith(v Visitor) { v.VisitAssignExpression(n) }

func (n *AssignExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *YieldExpression) VisitWith(v Visitor) { v.VisitYieldExpression(n) }

func (n *YieldExpression) VisitChildrenWith(v Visitor) {
	if n.Argument != nil {
		n.Argument.VisitWith(v)
	}
}

func (n *SequenceExpression) VisitWith(v Visitor) { v.VisitSequenceExpression(n) }

func (n *SequenceExpression) VisitChildrenWith(v Visitor) {
	n.Sequence.VisitWith(v)
}

func (n *JsxElement) VisitWith(v Visitor) { v.VisitJsxElement(n) }

func (n *JsxElement) VisitChildrenWith(v Visitor) {
	for i := range n.Attributes {
		n.Attributes[i].VisitWith(v)
	}
	n.Children.VisitWith(v)
}

func (n *JsxFragment) VisitWith(v Visitor) { v.VisitJsxFragment(n) }

func (n *JsxFragment) VisitChildrenWith(v Visitor) {
	n.Children.VisitWith(v)
}

func (n *JsxAttribute) VisitWith(v Visitor) { v.VisitJsxAttribute(n) }

func (n *JsxAttribute) VisitChildrenWith(v Visitor) {
	if n.Attr != nil {
		n.Attr.VisitWith(v)
	}
}

func (n *JsxNamedAttribute) VisitWith(v Visitor) { v.VisitJsxNamedAttribute(n) }

func (n *JsxNamedAttribute) VisitChildrenWith(v Visitor) {
	if n.Value != nil {
		n.Value.VisitWith(v)
	}
}

func (n *JsxSpreadAttribute) VisitWith(v Visitor) { v.VisitJsxSpreadAttribute(n) }

func (n *JsxSpreadAttribute) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *ExpressionStatement) VisitWith(v Visitor) { v.VisitExpressionStatement(n) }

func (n *ExpressionStatement) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *BlockStatement) VisitWith(v Visitor) { v.VisitBlockStatement(n) }

func (n *BlockStatement) VisitChildrenWith(v Visitor) {
	for i := range n.List {
		n.List[i].VisitWith(v)
	}
}

func (n *EmptyStatement) VisitWith(v Visitor) { v.VisitEmptyStatement(n) }

func (n *EmptyStatement) VisitChildrenWith(v Visitor) {}

func (n *ReturnStatement) VisitWith(v Visitor) { v.VisitReturnStatement(n) }

func (n *ReturnStatement) VisitChildrenWith(v Visitor) {
	if n.Argument != nil {
		n.Argument.VisitWith(v)
	}
}

func (n *IfStatement) VisitWith(v Visitor) { v.VisitIfStatement(n) }

func (n *IfStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	if n.Alternate != nil {
		n.Alternate.VisitWith(v)
	}
}

func (n *WhileStatement) VisitWith(v Visitor) { v.VisitWhileStatement(n) }

func (n *WhileStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *VariableDeclaration) VisitWith(v Visitor) { v.VisitVariableDeclaration(n) }

func (n *VariableDeclaration) VisitChildrenWith(v Visitor) {
	for i := range n.List {
		n.List[i].VisitWith(v)
	}
}

func (n *VariableDeclarator) VisitWith(v Visitor) { v.VisitVariableDeclarator(n) }

func (n *VariableDeclarator) VisitChildrenWith(v Visitor) {
	n.Target.VisitWith(v)
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *FunctionDeclaration) VisitWith(v Visitor) { v.VisitFunctionDeclaration(n) }

func (n *FunctionDeclaration) VisitChildrenWith(v Visitor) {
	n.Function.VisitWith(v)
}
