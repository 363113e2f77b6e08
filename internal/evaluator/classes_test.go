package evaluator_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInstanceAttributeShadowsClassAttribute(t *testing.T) {
	source := "class A:\n" +
		"    x = 1\n" +
		"a = A()\n" +
		"a.x = 2\n" +
		"(a.x, A.x)\n"
	result, _ := evalSource(t, source)
	require.Equal(t, "(2, 1)", result.String())
}

func TestInitRunsOnConstruction(t *testing.T) {
	source := "class Point:\n" +
		"    def __init__(self, x, y):\n" +
		"        self.x = x\n" +
		"        self.y = y\n" +
		"p = Point(3, 4)\n" +
		"(p.x, p.y)\n"
	result, _ := evalSource(t, source)
	require.Equal(t, "(3, 4)", result.String())
}

func TestMethodInheritedThroughSuperclassChain(t *testing.T) {
	source := "class Animal:\n" +
		"    def speak(self): return 'generic noise'\n" +
		"class Dog(Animal):\n" +
		"    def speak(self): return 'woof'\n" +
		"class Puppy(Dog): pass\n" +
		"Puppy().speak()\n"
	result, _ := evalSource(t, source)
	require.Equal(t, "woof", result.String())
}

func TestMissingAttributeRaisesAttributeError(t *testing.T) {
	err := evalSourceErr(t, "class A: pass\nA().missing\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "AttributeError")
}

func TestSuperclassMustBeClassOrNone(t *testing.T) {
	err := evalSourceErr(t, "class A(1): pass\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "TypeError")
}
