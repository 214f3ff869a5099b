package common

type MarkerSymbol string

const (
	MarkerSymbolCircle                  MarkerSymbol = "circle"
	MarkerSymbolCircleOpen              MarkerSymbol = "circle-open"
	MarkerSymbolCircleDot               MarkerSymbol = "circle-dot"
	MarkerSymbolCircleOpenDot           MarkerSymbol = "circle-open-dot"
	MarkerSymbolSquare                  MarkerSymbol = "square"
	MarkerSymbolSquareOpen              MarkerSymbol = "square-open"
	MarkerSymbolSquareDot               MarkerSymbol = "square-dot"
	MarkerSymbolSquareOpenDot           MarkerSymbol = "square-open-dot"
	MarkerSymbolDiamond                 MarkerSymbol = "diamond"
	MarkerSymbolDiamondOpen             MarkerSymbol = "diamond-open"
	MarkerSymbolDiamondDot              MarkerSymbol = "diamond-dot"
	MarkerSymbolDiamondOpenDot          MarkerSymbol = "diamond-open-dot"
	MarkerSymbolCross                   MarkerSymbol = "cross"
	MarkerSymbolCrossOpen               MarkerSymbol = "cross-open"
	MarkerSymbolCrossDot                MarkerSymbol = "cross-dot"
	MarkerSymbolCrossOpenDot            MarkerSymbol = "cross-open-dot"
	MarkerSymbolX                       MarkerSymbol = "x"
	MarkerSymbolXOpen                   MarkerSymbol = "x-open"
	MarkerSymbolXDot                    MarkerSymbol = "x-dot"
	MarkerSymbolXOpenDot                MarkerSymbol = "x-open-dot"
	MarkerSymbolTriangleUp              MarkerSymbol = "triangle-up"
	MarkerSymbolTriangleUpOpen          MarkerSymbol = "triangle-up-open"
	MarkerSymbolTriangleUpDot           MarkerSymbol = "triangle-up-dot"
	MarkerSymbolTriangleUpOpenDot       MarkerSymbol = "triangle-up-open-dot"
	MarkerSymbolTriangleDown            MarkerSymbol = "triangle-down"
	MarkerSymbolTriangleDownOpen        MarkerSymbol = "triangle-down-open"
	MarkerSymbolTriangleDownDot         MarkerSymbol = "triangle-down-dot"
	MarkerSymbolTriangleDownOpenDot     MarkerSymbol = "triangle-down-open-dot"
	MarkerSymbolTriangleLeft            MarkerSymbol = "triangle-left"
	MarkerSymbolTriangleLeftOpen        MarkerSymbol = "triangle-left-open"
	MarkerSymbolTriangleLeftDot         MarkerSymbol = "triangle-left-dot"
	MarkerSymbolTriangleLeftOpenDot     MarkerSymbol = "triangle-left-open-dot"
	MarkerSymbolTriangleRight           MarkerSymbol = "triangle-right"
	MarkerSymbolTriangleRightOpen       MarkerSymbol = "triangle-right-open"
	MarkerSymbolTriangleRightDot        MarkerSymbol = "triangle-right-dot"
	MarkerSymbolTriangleRightOpenDot    MarkerSymbol = "triangle-right-open-dot"
	MarkerSymbolTriangleNE              MarkerSymbol = "triangle-ne"
	MarkerSymbolTriangleNEOpen          MarkerSymbol = "triangle-ne-open"
	MarkerSymbolTriangleNEDot           MarkerSymbol = "triangle-ne-dot"
	MarkerSymbolTriangleNEOpenDot       MarkerSymbol = "triangle-ne-open-dot"
	MarkerSymbolTriangleSE              MarkerSymbol = "triangle-se"
	MarkerSymbolTriangleSEOpen          MarkerSymbol = "triangle-se-open"
	MarkerSymbolTriangleSEDot           MarkerSymbol = "triangle-se-dot"
	MarkerSymbolTriangleSEOpenDot       MarkerSymbol = "triangle-se-open-dot"
	MarkerSymbolTriangleSW              MarkerSymbol = "triangle-sw"
	MarkerSymbolTriangleSWOpen          MarkerSymbol = "triangle-sw-open"
	MarkerSymbolTriangleSWDot           MarkerSymbol = "triangle-sw-dot"
	MarkerSymbolTriangleSWOpenDot       MarkerSymbol = "triangle-sw-open-dot"
	MarkerSymbolTriangleNW              MarkerSymbol = "triangle-nw"
	MarkerSymbolTriangleNWOpen          MarkerSymbol = "triangle-nw-open"
	MarkerSymbolTriangleNWDot           MarkerSymbol = "triangle-nw-dot"
	MarkerSymbolTriangleNWOpenDot       MarkerSymbol = "triangle-nw-open-dot"
	MarkerSymbolPentagon                MarkerSymbol = "pentagon"
	MarkerSymbolPentagonOpen            MarkerSymbol = "pentagon-open"
	MarkerSymbolPentagonDot             MarkerSymbol = "pentagon-dot"
	MarkerSymbolPentagonOpenDot         MarkerSymbol = "pentagon-open-dot"
	MarkerSymbolHexagon                 MarkerSymbol = "hexagon"
	MarkerSymbolHexagonOpen             MarkerSymbol = "hexagon-open"
	MarkerSymbolHexagonDot              MarkerSymbol = "hexagon-dot"
	MarkerSymbolHexagonOpenDot          MarkerSymbol = "hexagon-open-dot"
	MarkerSymbolHexagon2                MarkerSymbol = "hexagon2"
	MarkerSymbolHexagon2Open            MarkerSymbol = "hexagon2-open"
	MarkerSymbolHexagon2Dot             MarkerSymbol = "hexagon2-dot"
	MarkerSymbolHexagon2OpenDot         MarkerSymbol = "hexagon2-open-dot"
	MarkerSymbolOctagon                 MarkerSymbol = "octagon"
	MarkerSymbolOctagonOpen             MarkerSymbol = "octagon-open"
	MarkerSymbolOctagonDot              MarkerSymbol = "octagon-dot"
	MarkerSymbolOctagonOpenDot          MarkerSymbol = "octagon-open-dot"
	MarkerSymbolStar                    MarkerSymbol = "star"
	MarkerSymbolStarOpen                MarkerSymbol = "star-open"
	MarkerSymbolStarDot                 MarkerSymbol = "star-dot"
	MarkerSymbolStarOpenDot             MarkerSymbol = "star-open-dot"
	MarkerSymbolHexagram                MarkerSymbol = "hexagram"
	MarkerSymbolHexagramOpen            MarkerSymbol = "hexagram-open"
	MarkerSymbolHexagramDot             MarkerSymbol = "hexagram-dot"
	MarkerSymbolHexagramOpenDot         MarkerSymbol = "hexagram-open-dot"
	MarkerSymbolStarTriangleUp          MarkerSymbol = "star-triangle-up"
	MarkerSymbolStarTriangleUpOpen      MarkerSymbol = "star-triangle-up-open"
	MarkerSymbolStarTriangleUpDot       MarkerSymbol = "star-triangle-up-dot"
	MarkerSymbolStarTriangleUpOpenDot   MarkerSymbol = "star-triangle-up-open-dot"
	MarkerSymbolStarTriangleDown        MarkerSymbol = "star-triangle-down"
	MarkerSymbolStarTriangleDownOpen    MarkerSymbol = "star-triangle-down-open"
	MarkerSymbolStarTriangleDownDot     MarkerSymbol = "star-triangle-down-dot"
	MarkerSymbolStarTriangleDownOpenDot MarkerSymbol = "star-triangle-down-open-dot"
	MarkerSymbolStarSquare              MarkerSymbol = "star-square"
	MarkerSymbolStarSquareOpen          MarkerSymbol = "star-square-open"
	MarkerSymbolStarSquareDot           MarkerSymbol = "star-square-dot"
	MarkerSymbolStarSquareOpenDot       MarkerSymbol = "star-square-open-dot"
	MarkerSymbolStarDiamond             MarkerSymbol = "star-diamond"
	MarkerSymbolStarDiamondOpen         MarkerSymbol = "star-diamond-open"
	MarkerSymbolStarDiamondDot          MarkerSymbol = "star-diamond-dot"
	MarkerSymbolStarDiamondOpenDot      MarkerSymbol = "star-diamond-open-dot"
	MarkerSymbolDiamondTall             MarkerSymbol = "diamond-tall"
	MarkerSymbolDiamondTallOpen         MarkerSymbol = "diamond-tall-open"
	MarkerSymbolDiamondTallDot          MarkerSymbol = "diamond-tall-dot"
	MarkerSymbolDiamondTallOpenDot      MarkerSymbol = "diamond-tall-open-dot"
	MarkerSymbolDiamondWide             MarkerSymbol = "diamond-wide"
	MarkerSymbolDiamondWideOpen         MarkerSymbol = "diamond-wide-open"
	MarkerSymbolDiamondWideDot          MarkerSymbol = "diamond-wide-dot"
	MarkerSymbolDiamondWideOpenDot      MarkerSymbol = "diamond-wide-open-dot"
	MarkerSymbolHourglass               MarkerSymbol = "hourglass"
	MarkerSymbolHourglassOpen           MarkerSymbol = "hourglass-open"
	MarkerSymbolBowTie                  MarkerSymbol = "bowtie"
	MarkerSymbolBowTieOpen              MarkerSymbol = "bowtie-open"
	MarkerSymbolCircleCross             MarkerSymbol = "circle-cross"
	MarkerSymbolCircleCrossOpen         MarkerSymbol = "circle-cross-open"
	MarkerSymbolCircleX                 MarkerSymbol = "circle-x"
	MarkerSymbolCircleXOpen             MarkerSymbol = "circle-x-open"
	MarkerSymbolSquareCross             MarkerSymbol = "square-cross"
	MarkerSymbolSquareCrossOpen         MarkerSymbol = "square-cross-open"
	MarkerSymbolSquareX                 MarkerSymbol = "square-x"
	MarkerSymbolSquareXOpen             MarkerSymbol = "square-x-open"
	MarkerSymbolDiamondCross            MarkerSymbol = "diamond-cross"
	MarkerSymbolDiamondCrossOpen        MarkerSymbol = "diamond-cross-open"
	MarkerSymbolDiamondX                MarkerSymbol = "diamond-x"
	MarkerSymbolDiamondXOpen            MarkerSymbol = "diamond-x-open"
	MarkerSymbolCrossThin               MarkerSymbol = "cross-thin"
	MarkerSymbolCrossThinOpen           MarkerSymbol = "cross-thin-open"
	MarkerSymbolXThin                   MarkerSymbol = "x-thin"
	MarkerSymbolXThinOpen               MarkerSymbol = "x-thin-open"
	MarkerSymbolAsterisk                MarkerSymbol = "asterisk"
	MarkerSymbolAsteriskOpen            MarkerSymbol = "asterisk-open"
	MarkerSymbolHash                    MarkerSymbol = "hash"
	MarkerSymbolHashOpen                MarkerSymbol = "hash-open"
	MarkerSymbolHashDot                 MarkerSymbol = "hash-dot"
	MarkerSymbolHashOpenDot             MarkerSymbol = "hash-open-dot"
	MarkerSymbolYUp                     MarkerSymbol = "y-up"
	MarkerSymbolYUpOpen                 MarkerSymbol = "y-up-open"
	MarkerSymbolYDown                   MarkerSymbol = "y-down"
	MarkerSymbolYDownOpen               MarkerSymbol = "y-down-open"
	MarkerSymbolYLeft                   MarkerSymbol = "y-left"
	MarkerSymbolYLeftOpen               MarkerSymbol = "y-left-open"
	MarkerSymbolYRight                  MarkerSymbol = "y-right"
	MarkerSymbolYRightOpen              MarkerSymbol = "y-right-open"
	MarkerSymbolLineEW                  MarkerSymbol = "line-ew"
	MarkerSymbolLineEWOpen              MarkerSymbol = "line-ew-open"
	MarkerSymbolLineNS                  MarkerSymbol = "line-ns"
	MarkerSymbolLineNSOpen              MarkerSymbol = "line-ns-open"
	MarkerSymbolLineNE                  MarkerSymbol = "line-ne"
	MarkerSymbolLineNEOpen              MarkerSymbol = "line-ne-open"
	MarkerSymbolLineNW                  MarkerSymbol = "line-nw"
	MarkerSymbolLineNWOpen              MarkerSymbol = "line-nw-open"
)
