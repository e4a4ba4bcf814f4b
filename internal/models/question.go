package models

// Question is one multiplication fact. Operands and the product are fixed
// when the session is created and never change afterwards.
type Question struct {
	Num1   int `bson:"num1" json:"num1"`
	Num2   int `bson:"num2" json:"num2"`
	Answer int `bson:"answer" json:"answer"`
}
