// Copyright 2023-2026 The Lumen Language Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast

import "fmt"

const (
	KindInvalid Kind = iota

	KindFile
	KindUnexpected
	KindModifier
	KindModifierDetail
	KindDeclFunc
	KindDeclVar
	KindDeclClass
	KindDeclBody
	KindParamList
	KindParam
	KindBlock
	KindStmtFor
	KindStmtIf
	KindStmtReturn
	KindExprPath
	KindExprLiteral
	KindExprCall
	KindTypePath

	totalKinds
)

// Kind identifies which grammar production a [Node] represents.
type Kind byte

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ast.Kind(%d)", byte(k))
}

var kindNames = [...]string{
	KindInvalid:        "Invalid",
	KindFile:           "File",
	KindUnexpected:     "Unexpected",
	KindModifier:       "Modifier",
	KindModifierDetail: "ModifierDetail",
	KindDeclFunc:       "DeclFunc",
	KindDeclVar:        "DeclVar",
	KindDeclClass:      "DeclClass",
	KindDeclBody:       "DeclBody",
	KindParamList:      "ParamList",
	KindParam:          "Param",
	KindBlock:          "Block",
	KindStmtFor:        "StmtFor",
	KindStmtIf:         "StmtIf",
	KindStmtReturn:     "StmtReturn",
	KindExprPath:       "ExprPath",
	KindExprLiteral:    "ExprLiteral",
	KindExprCall:       "ExprCall",
	KindTypePath:       "TypePath",
}
